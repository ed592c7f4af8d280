package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected a log file when debug=true")
	}
	defer func() {
		logFile.Close()
		log.SetOutput(io.Discard)
	}()

	log.Println("session: idle -> running")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected a log file")
	}
	defer func() {
		logFile.Close()
		log.SetOutput(io.Discard)
	}()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log file is %d bytes", info.Size())
	}
}

func TestExecuteClosesLogOnError(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs([]string{"run", "--debug", "--preset", "warp"})
	if err := execute(root); err == nil {
		t.Fatal("expected an unknown preset error")
	}
	if logFile != nil {
		t.Error("log file left open after a failed command")
	}
	if _, err := os.Stat(filepath.Join("logs", "motionlab.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
