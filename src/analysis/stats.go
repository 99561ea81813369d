package analysis

import (
	"strconv"
	"time"

	"github.com/iafilius/FiveStepCharts/src/charts"
)

// UnknownIndustry is used for reports without an industry.
const UnknownIndustry = "未知"

// ScoreBand is one completeness-score bucket.
type ScoreBand int

const (
	BandExcellent ScoreBand = iota // >= 80
	BandGood                       // 60..80
	BandAverage                    // 40..60
	BandPoor                       // < 40
)

var bandLabels = [...]string{"优秀", "良好", "一般", "差"}

func (b ScoreBand) String() string {
	if b < BandExcellent || b > BandPoor {
		return "?"
	}
	return bandLabels[b]
}

// BandFor buckets a completeness score.
func BandFor(score float64) ScoreBand {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandAverage
	default:
		return BandPoor
	}
}

// StepStat is how often one step was found across all reports.
type StepStat struct {
	Step       string
	Count      int
	Percentage float64 // one decimal
}

// IndustryStat is the average completeness per industry.
type IndustryStat struct {
	Industry string
	Count    int
	AvgScore float64 // one decimal
}

// Stats is the aggregate view over a report set.
type Stats struct {
	TotalReports int
	Steps        []StepStat
	Distribution [4]int // indexed by ScoreBand
	Industries   []IndustryStat
}

// ComputeStats aggregates reports. Industries keep first-seen order.
func ComputeStats(reports []Report) Stats {
	defer charts.TimeTrack(time.Now(), "ComputeStats")
	s := Stats{TotalReports: len(reports)}

	for _, step := range StepOrder {
		n := 0
		for _, r := range reports {
			if r.Analysis.Found(step) {
				n++
			}
		}
		pct := 0.0
		if len(reports) > 0 {
			pct = round1(float64(n) / float64(len(reports)) * 100)
		}
		s.Steps = append(s.Steps, StepStat{Step: step, Count: n, Percentage: pct})
	}

	type acc struct {
		sum float64
		n   int
	}
	var order []string
	sums := map[string]*acc{}
	for _, r := range reports {
		s.Distribution[BandFor(r.Score())]++
		ind := r.Industry
		if ind == "" {
			ind = UnknownIndustry
		}
		a, ok := sums[ind]
		if !ok {
			a = &acc{}
			sums[ind] = a
			order = append(order, ind)
		}
		a.sum += r.Score()
		a.n++
	}
	for _, ind := range order {
		a := sums[ind]
		s.Industries = append(s.Industries, IndustryStat{
			Industry: ind,
			Count:    a.n,
			AvgScore: round1(a.sum / float64(a.n)),
		})
	}
	charts.Debugf("[analysis] stats: %d reports, %d industries", s.TotalReports, len(s.Industries))
	return s
}

// StepFrequencySeries returns the inputs for RenderStepFrequencyBars.
func (s Stats) StepFrequencySeries() (labels []string, counts []int, percentages []float64) {
	for _, st := range s.Steps {
		labels = append(labels, st.Step)
		counts = append(counts, st.Count)
		percentages = append(percentages, st.Percentage)
	}
	return labels, counts, percentages
}

// ScoreDistributionSeries returns the inputs for RenderScoreDistributionPie,
// always in band order so slice colors stay stable.
func (s Stats) ScoreDistributionSeries() (labels []string, values []float64) {
	for b := BandExcellent; b <= BandPoor; b++ {
		labels = append(labels, b.String())
		values = append(values, float64(s.Distribution[b]))
	}
	return labels, values
}

// IndustrySeries returns the inputs for RenderIndustryScoresBars.
func (s Stats) IndustrySeries() (labels []string, scores []float64, counts []int) {
	for _, is := range s.Industries {
		labels = append(labels, is.Industry)
		scores = append(scores, is.AvgScore)
		counts = append(counts, is.Count)
	}
	return labels, scores, counts
}

// RadarSeries gives one report's step coverage: 100 when found, else 0.
func RadarSeries(r Report) (values []float64, labels []string) {
	for _, step := range StepOrder {
		v := 0.0
		if r.Analysis.Found(step) {
			v = 100
		}
		values = append(values, v)
		labels = append(labels, step)
	}
	return values, labels
}

// round1 rounds to one decimal on the exact binary value, so ties such as
// 6.25 go to the even digit (6.2).
func round1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
