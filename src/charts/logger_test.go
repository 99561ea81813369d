package charts

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	savedLevel := GetLogLevel()
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		baseLogger = saved
		SetLogLevel(savedLevel.String())
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")

	msg := "[step_frequency] tooltip 应用频率: 60% (10份研报)"
	logInfo := Infof
	logInfo(msg)

	out := buf.String()
	if !strings.Contains(out, "应用频率: 60% (10份研报)") {
		t.Fatalf("log output missing expected tooltip: %s", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestLogLevelFilters(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("warn")
	Infof("hidden %d", 1)
	Debugf("hidden too")
	Warnf("shown %s", "warn")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown warn") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestSetLogLevel_IgnoresUnknown(t *testing.T) {
	captureLog(t)
	SetLogLevel("error")
	SetLogLevel("verbose")
	if GetLogLevel() != LevelError {
		t.Fatalf("unknown level changed state: %v", GetLogLevel())
	}
	if ValidLogLevel("verbose") || !ValidLogLevel(" WARNING ") {
		t.Fatalf("ValidLogLevel mismatch")
	}
}

func TestChartLogScope(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("debug")
	chartLog{KindRadar, "radarChart"}.warnf("%d non-finite values", 1)
	chartLog{KindIndustryScores, ""}.debugf("wrote %s", "x.png")
	out := buf.String()
	if !strings.Contains(out, "[WARN] [radar radarChart] 1 non-finite values") {
		t.Fatalf("scoped warn line missing: %s", out)
	}
	if !strings.Contains(out, "[DEBUG] ["+string(KindIndustryScores)+"] wrote x.png") {
		t.Fatalf("unkeyed scope line missing: %s", out)
	}
}

func TestChartLogRespectsLevel(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("warn")
	chartLog{KindRadar, "r"}.debugf("hidden")
	chartLog{KindRadar, "r"}.took(time.Now())
	if buf.Len() != 0 {
		t.Fatalf("debug chart lines leaked at warn level: %s", buf.String())
	}
}
