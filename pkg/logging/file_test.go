package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, config FileConfig) (*FileLogger, string) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "treesnap.log")
	config.Path = logPath

	logger, err := NewFileLogger(config)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	return logger, logPath
}

func TestNewFileLogger(t *testing.T) {
	_, logPath := newTestLogger(t, FileConfig{
		Format:     FormatText,
		Level:      InfoLevel,
		MaxSize:    1024 * 1024,
		MaxBackups: 3,
	})

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "treesnap.log")

	logger, err := NewFileLogger(FileConfig{
		Path:   logPath,
		Format: FormatText,
		Level:  InfoLevel,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Dir(logPath)); os.IsNotExist(err) {
		t.Error("log directory was not created")
	}
}

func TestFileLogger_LevelFiltering(t *testing.T) {
	logger, logPath := newTestLogger(t, FileConfig{
		Format: FormatText,
		Level:  WarnLevel,
	})

	logger.Debug("debug message", nil)
	logger.Info("info message", nil)
	logger.Warn("warn message", nil)
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	content := string(data)
	if strings.Contains(content, "debug message") {
		t.Error("debug entry should be filtered at warn level")
	}
	if strings.Contains(content, "info message") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(content, "warn message") {
		t.Error("warn entry should be written")
	}
}

func TestFileLogger_JSONFormat(t *testing.T) {
	logger, logPath := newTestLogger(t, FileConfig{
		Format: FormatJSON,
		Level:  InfoLevel,
	})

	logger.Info("scan complete", Fields{"files": 3, "root": "/data"})
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}

	if entry["message"] != "scan complete" {
		t.Errorf("message = %v, want scan complete", entry["message"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["root"] != "/data" {
		t.Errorf("root = %v, want /data", entry["root"])
	}
}

func TestFileLogger_WithFields(t *testing.T) {
	logger, logPath := newTestLogger(t, FileConfig{
		Format: FormatJSON,
		Level:  InfoLevel,
	})

	child := logger.WithFields(Fields{"folder": "/data"})
	child.Info("baseline saved", nil)
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["folder"] != "/data" {
		t.Errorf("folder = %v, want /data (attached field missing)", entry["folder"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"ERROR", ErrorLevel},
		{"unknown", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
