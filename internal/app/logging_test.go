package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"})
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }
	return l, &buf
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if result := tt.level.String(); result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		if result := ParseLogLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.Info("formatted %s %d", "test", 42)

	want := "2024-05-01T12:30:00.000 [INFO] test: formatted test 42\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("expected DEBUG and INFO to be filtered out:\n%s", output)
	}
	if !strings.Contains(output, "[WARN]") || !strings.Contains(output, "[ERROR]") {
		t.Errorf("expected WARN and ERROR in output:\n%s", output)
	}
	if logger.Enabled(LogLevelInfo) || !logger.Enabled(LogLevelError) {
		t.Error("Enabled() disagrees with the configured level")
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.WithFields(map[string]any{"zeta": 1, "alpha": "a"}).WithComponent("view").Info("frame")

	if !strings.HasSuffix(buf.String(), "frame {alpha=a, component=view, zeta=1}\n") {
		t.Errorf("unexpected fields: %q", buf.String())
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	_ = logger.WithField("key", "value")
	logger.Info("plain")

	if strings.Contains(buf.String(), "key=value") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestLogger_WithSession(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	sl, id := logger.WithSession()
	if len(id) != 36 {
		t.Errorf("session id %q is not a uuid", id)
	}
	sl.Info("hello")
	if !strings.Contains(buf.String(), "session="+id) {
		t.Errorf("expected session field, got %q", buf.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelError)

	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Error("expected no output at error level")
	}

	logger.SetLevel(LogLevelInfo)
	logger.Info("should appear")
	if buf.Len() == 0 {
		t.Error("expected output after SetLevel")
	}
}

func TestNullLogger(t *testing.T) {
	// NullLogger and its children should not panic
	NullLogger.Debug("test")
	NullLogger.WithComponent("x").Error("test")
	NullLogger.SetLevel(LogLevelDebug)
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should never be enabled")
	}
}

func TestGetSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if GetLogger() != NullLogger {
		t.Error("expected NullLogger before SetLogger")
	}

	logger, _ := newBufferLogger(LogLevelInfo)
	SetLogger(logger)
	if GetLogger() != logger {
		t.Error("GetLogger() did not return the installed logger")
	}

	SetLogger(nil)
	if GetLogger() != NullLogger {
		t.Error("SetLogger(nil) should restore NullLogger")
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "glint.log")

	logger, closer, err := OpenLogFile(path, LogLevelDebug)
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	logger.Debug("first")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	// Appends rather than truncates
	logger, closer, err = OpenLogFile(path, LogLevelDebug)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("second")
	_ = closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 2 {
		t.Errorf("log has %d lines, want 2:\n%s", lines, data)
	}
	if !strings.Contains(string(data), "glint: first") {
		t.Errorf("missing default prefix:\n%s", data)
	}
}

func TestOpenLogFile_EmptyPath(t *testing.T) {
	logger, closer, err := OpenLogFile("", LogLevelDebug)
	if err != nil {
		t.Fatal(err)
	}
	if logger != NullLogger {
		t.Error("empty path should yield NullLogger")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()

	if cfg.Level != LogLevelInfo {
		t.Errorf("expected default level INFO, got %d", cfg.Level)
	}
	if cfg.Output == nil {
		t.Error("expected default output to be set")
	}
	if cfg.Prefix != "glint" {
		t.Errorf("expected prefix 'glint', got '%s'", cfg.Prefix)
	}
}
