package internal

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// captureLog redirects the package logger into a buffer for one test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := logLevel
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		SetLogLevel(original)
	})
	return &buf
}

func TestSetLogLevel(t *testing.T) {
	captureLog(t)

	tests := []struct {
		level LogLevel
		want  log.Level
	}{
		{LogLevelError, log.ErrorLevel},
		{LogLevelWarn, log.WarnLevel},
		{LogLevelInfo, log.InfoLevel},
		{LogLevelDebug, log.DebugLevel},
	}

	for _, tt := range tests {
		SetLogLevel(tt.level)
		if logLevel != tt.level {
			t.Errorf("SetLogLevel(%d) logLevel = %v", tt.level, logLevel)
		}
		if got := logger.GetLevel(); got != tt.want {
			t.Errorf("SetLogLevel(%d) logger level = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSetVerbose(t *testing.T) {
	captureLog(t)

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("SetVerbose(false) logLevel = %v, want LogLevelInfo", logLevel)
	}
}

func TestLogFunctions_RespectLevel(t *testing.T) {
	buf := captureLog(t)

	SetLogLevel(LogLevelWarn)
	LogDebug("metadata line %d skipped", 3)
	LogInfo("loaded %s", "stint1.csv")
	LogWarn("no numeric %q channel", "Time")
	LogError("catalog unreadable")

	out := buf.String()
	if strings.Contains(out, "skipped") || strings.Contains(out, "loaded") {
		t.Errorf("messages below warn level were written:\n%s", out)
	}
	if !strings.Contains(out, `no numeric "Time" channel`) || !strings.Contains(out, "catalog unreadable") {
		t.Errorf("warn and error messages missing:\n%s", out)
	}

	buf.Reset()
	SetVerbose(true)
	LogDebug("metadata line %d skipped", 3)
	if !strings.Contains(buf.String(), "metadata line 3 skipped") {
		t.Errorf("debug message missing in verbose mode:\n%s", buf.String())
	}
}
