package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLogger_WritesCallerToFile(t *testing.T) {
	dir := t.TempDir() + string(os.PathSeparator)

	logger, err := InitLogger(dir, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Info("logger ready")
	_ = logger.Sync()

	body, err := os.ReadFile(filepath.Join(dir, "ticket-purchase.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(body)
	if !strings.Contains(line, `"msg":"logger ready"`) {
		t.Fatalf("expected message in log, got %s", line)
	}
	if !strings.Contains(line, `"caller":"utils/logger_test.go:`) {
		t.Fatalf("expected file:line caller, got %s", line)
	}
	if !strings.Contains(line, `"timestamp":`) {
		t.Fatalf("expected timestamp key, got %s", line)
	}
}
