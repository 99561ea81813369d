// Package analysis turns analysed research reports into the series the chart
// renderer consumes: per-report step coverage for the radar and the
// aggregate step frequency, score distribution and industry averages.
//
// Reports are read either from the research_reports.json export or from the
// SQLite database (reports + analysis_results tables). Completeness scores
// are read as stored; they are never recomputed here.
package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/iafilius/FiveStepCharts/src/charts"
)

// StepOrder is the five-step sequence, also the radar axis order.
var StepOrder = []string{"信息", "逻辑", "超预期", "催化剂", "结论"}

// StepResult is the outcome of one step for one report.
type StepResult struct {
	Found       bool     `json:"found"`
	Keywords    []string `json:"keywords,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
	Description string   `json:"description,omitempty"`
	StepScore   float64  `json:"step_score,omitempty"`
}

// Summary holds the report-level result.
type Summary struct {
	CompletenessScore float64 `json:"completeness_score"`
	StepsFound        int     `json:"steps_found,omitempty"`
	Evaluation        string  `json:"evaluation,omitempty"`
	OneLineSummary    string  `json:"one_line_summary,omitempty"`
}

// Analysis is keyed by step name next to a "summary" object in the JSON export.
type Analysis struct {
	Steps   map[string]StepResult
	Summary Summary
}

func (a *Analysis) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	a.Steps = make(map[string]StepResult, len(raw))
	for k, v := range raw {
		if k == "summary" {
			if err := json.Unmarshal(v, &a.Summary); err != nil {
				return fmt.Errorf("summary: %w", err)
			}
			continue
		}
		var st StepResult
		if err := json.Unmarshal(v, &st); err != nil {
			// unknown non-step keys (older exports) are skipped
			charts.Debugf("[analysis] skipping analysis key %q: %v", k, err)
			continue
		}
		a.Steps[k] = st
	}
	return nil
}

func (a Analysis) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(a.Steps)+1)
	for k, v := range a.Steps {
		out[k] = v
	}
	out["summary"] = a.Summary
	return json.Marshal(out)
}

// Found reports whether step was found; unknown steps count as not found.
func (a Analysis) Found(step string) bool {
	return a.Steps[step].Found
}

// Report is one analysed research report.
type Report struct {
	Title          string   `json:"title"`
	Link           string   `json:"link,omitempty"`
	Abstract       string   `json:"abstract,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Rating         string   `json:"rating,omitempty"`
	Org            string   `json:"org,omitempty"`
	Date           string   `json:"date,omitempty"`
	AnalysisMethod string   `json:"analysis_method,omitempty"`
	Analysis       Analysis `json:"analysis"`
}

// Score is the stored completeness score.
func (r Report) Score() float64 { return r.Analysis.Summary.CompletenessScore }

// LoadReports reads the research_reports.json export. A missing file is not
// an error: there are simply no reports yet.
func LoadReports(path string) ([]Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			charts.Warnf("[analysis] %s not found; no reports", path)
			return []Report{}, nil
		}
		return nil, err
	}
	var reports []Report
	if err := json.Unmarshal(b, &reports); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	charts.Infof("[analysis] loaded %d reports from %s", len(reports), path)
	return reports, nil
}

// LoadReportsDB reads all reports with their step results from the SQLite
// database, newest first.
func LoadReportsDB(ctx context.Context, path string) ([]Report, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open reports db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, title, COALESCE(link, ''), COALESCE(abstract, ''), COALESCE(industry, ''), COALESCE(rating, ''),
		       COALESCE(org, ''), COALESCE(date, ''), COALESCE(analysis_method, ''), COALESCE(completeness_score, 0)
		FROM reports ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	var (
		reports []Report
		ids     []int64
		index   = map[int64]int{}
	)
	for rows.Next() {
		var (
			id int64
			r  Report
		)
		if err := rows.Scan(&id, &r.Title, &r.Link, &r.Abstract, &r.Industry, &r.Rating,
			&r.Org, &r.Date, &r.AnalysisMethod, &r.Analysis.Summary.CompletenessScore); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan report: %w", err)
		}
		r.Analysis.Steps = map[string]StepResult{}
		index[id] = len(reports)
		ids = append(ids, id)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	steps, err := db.QueryContext(ctx, `
		SELECT report_id, step_name, found, COALESCE(keywords, '[]'), COALESCE(evidence, '[]'), COALESCE(description, '')
		FROM analysis_results`)
	if err != nil {
		return nil, fmt.Errorf("query analysis_results: %w", err)
	}
	defer steps.Close()
	for steps.Next() {
		var (
			reportID           int64
			name               string
			found              int
			keywords, evidence string
			st                 StepResult
		)
		if err := steps.Scan(&reportID, &name, &found, &keywords, &evidence, &st.Description); err != nil {
			return nil, fmt.Errorf("scan analysis result: %w", err)
		}
		i, ok := index[reportID]
		if !ok {
			continue
		}
		st.Found = found != 0
		st.Keywords = decodeStringList(keywords)
		st.Evidence = decodeStringList(evidence)
		reports[i].Analysis.Steps[name] = st
	}
	if err := steps.Err(); err != nil {
		return nil, err
	}
	for i := range reports {
		n := 0
		for _, st := range reports[i].Analysis.Steps {
			if st.Found {
				n++
			}
		}
		reports[i].Analysis.Summary.StepsFound = n
	}
	charts.Infof("[analysis] loaded %d reports from %s", len(ids), path)
	return reports, nil
}

// decodeStringList parses a JSON string array column, tolerating bad data.
func decodeStringList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}
