package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit_DiscardByDefault(t *testing.T) {
	f, err := Init(Options{})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if f != nil {
		t.Error("Expected nil log file when no path is configured")
		f.Close()
	}
	if Log.Out != io.Discard {
		t.Errorf("Expected output to be io.Discard, got %v", Log.Out)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", Log.GetLevel())
	}
}

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "haliteviz.log")

	f, err := Init(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer f.Close()

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", Log.GetLevel())
	}

	For("test").Info("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("Expected component field in json log, got %q", data)
	}
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	if _, err := Init(Options{Level: "loud"}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", Log.GetLevel())
	}
}

func TestInit_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haliteviz.log")
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	f, err := Init(Options{File: path})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("Expected rotated file, got %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
