package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsServerShaped(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Format != "json" {
		t.Fatalf("format = %q, want json", cfg.Format)
	}
	if cfg.Output != "stderr" || cfg.Level != "info" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestInitializeWritesNamedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	defer func() { _ = Initialize(DefaultConfig()) }()

	if err := Initialize(Config{Level: "info", Format: "json", Output: path}); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	Info("quote computed")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(data))

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if entry["logger"] != "moverz" {
		t.Fatalf("logger = %v, want moverz", entry["logger"])
	}
	if entry["msg"] != "quote computed" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Fatal("timestamp key missing")
	}
}

func TestInitializeUnknownLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	defer func() { _ = Initialize(DefaultConfig()) }()

	if err := Initialize(Config{Level: "loud", Format: "json", Output: path}); err != nil {
		t.Fatalf("unknown level must fall back, got %v", err)
	}
}
