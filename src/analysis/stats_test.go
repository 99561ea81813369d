package analysis

import (
	"reflect"
	"testing"
)

func report(industry string, score float64, found ...string) Report {
	r := Report{Industry: industry}
	r.Analysis.Steps = map[string]StepResult{}
	for _, s := range found {
		r.Analysis.Steps[s] = StepResult{Found: true}
	}
	r.Analysis.Summary.CompletenessScore = score
	return r
}

func TestBandFor(t *testing.T) {
	cases := map[float64]ScoreBand{
		100: BandExcellent, 80: BandExcellent,
		79.9: BandGood, 60: BandGood,
		59: BandAverage, 40: BandAverage,
		39.9: BandPoor, 0: BandPoor,
	}
	for score, want := range cases {
		if got := BandFor(score); got != want {
			t.Fatalf("BandFor(%v)=%v want %v", score, got, want)
		}
	}
	if BandPoor.String() != "差" || ScoreBand(9).String() != "?" {
		t.Fatalf("band labels")
	}
}

func TestComputeStats(t *testing.T) {
	reports := []Report{
		report("电子", 100, "信息", "逻辑", "超预期", "催化剂", "结论"),
		report("医药", 60, "信息", "逻辑", "结论"),
		report("电子", 45, "信息"),
		report("", 20),
	}
	s := ComputeStats(reports)
	if s.TotalReports != 4 {
		t.Fatalf("total %d", s.TotalReports)
	}

	labels, counts, pcts := s.StepFrequencySeries()
	if !reflect.DeepEqual(labels, StepOrder) {
		t.Fatalf("labels %v", labels)
	}
	if !reflect.DeepEqual(counts, []int{3, 2, 1, 1, 2}) {
		t.Fatalf("counts %v", counts)
	}
	if !reflect.DeepEqual(pcts, []float64{75, 50, 25, 25, 50}) {
		t.Fatalf("percentages %v", pcts)
	}

	bl, bv := s.ScoreDistributionSeries()
	if !reflect.DeepEqual(bl, []string{"优秀", "良好", "一般", "差"}) {
		t.Fatalf("band labels %v", bl)
	}
	if !reflect.DeepEqual(bv, []float64{1, 1, 1, 1}) {
		t.Fatalf("band values %v", bv)
	}

	il, is, ic := s.IndustrySeries()
	if !reflect.DeepEqual(il, []string{"电子", "医药", UnknownIndustry}) {
		t.Fatalf("industries should keep first-seen order, got %v", il)
	}
	if !reflect.DeepEqual(is, []float64{72.5, 60, 20}) {
		t.Fatalf("industry scores %v", is)
	}
	if !reflect.DeepEqual(ic, []int{2, 1, 1}) {
		t.Fatalf("industry counts %v", ic)
	}
}

func TestComputeStats_PercentageRounding(t *testing.T) {
	s := ComputeStats([]Report{report("a", 0, "信息"), report("a", 0), report("a", 0)})
	if s.Steps[0].Percentage != 33.3 {
		t.Fatalf("want 33.3 got %v", s.Steps[0].Percentage)
	}
	if s.Industries[0].AvgScore != 0 {
		t.Fatalf("avg %v", s.Industries[0].AvgScore)
	}
}

func TestComputeStats_HalfToEven(t *testing.T) {
	reports := []Report{report("a", 80, "信息"), report("a", 82.5)}
	for i := 0; i < 14; i++ {
		reports = append(reports, report("b", 0))
	}
	s := ComputeStats(reports)
	if s.Steps[0].Percentage != 6.2 {
		t.Fatalf("1 of 16: want 6.2 got %v", s.Steps[0].Percentage)
	}
	if s.Industries[0].Industry != "a" || s.Industries[0].AvgScore != 81.2 {
		t.Fatalf("industry a: want 81.2 got %+v", s.Industries[0])
	}
	if got := round1(0.35); got != 0.3 {
		t.Fatalf("round1(0.35)=%v", got)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	_, counts, pcts := s.StepFrequencySeries()
	if len(counts) != len(StepOrder) || pcts[0] != 0 {
		t.Fatalf("empty set should still list every step at 0%%: %v %v", counts, pcts)
	}
	if l, _, _ := s.IndustrySeries(); len(l) != 0 {
		t.Fatalf("industries %v", l)
	}
	if _, v := s.ScoreDistributionSeries(); !reflect.DeepEqual(v, []float64{0, 0, 0, 0}) {
		t.Fatalf("distribution %v", v)
	}
}

func TestRadarSeries(t *testing.T) {
	values, labels := RadarSeries(report("x", 60, "信息", "超预期", "结论"))
	if !reflect.DeepEqual(values, []float64{100, 0, 100, 0, 100}) {
		t.Fatalf("values %v", values)
	}
	if !reflect.DeepEqual(labels, StepOrder) {
		t.Fatalf("labels %v", labels)
	}
}
