package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSurfacesConfigError(t *testing.T) {
	// A broken user config must fail before any window opens, with an
	// error Execute will print (not one fail already reported).
	tmpDir := t.TempDir()
	cfgDir := filepath.Join(tmpDir, "tm")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	content := "tone:\n  frequency: -5\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	err := run([]string{"5m", "tea"})
	if err == nil {
		t.Fatal("run succeeded with an invalid user config")
	}
	var rep reportedError
	if errors.As(err, &rep) {
		t.Fatal("config error marked as already reported; Execute would swallow it")
	}

	var buf bytes.Buffer
	reportError(&buf, err)
	out := buf.String()
	if !strings.Contains(out, "tone.frequency") {
		t.Errorf("stderr output %q does not mention the invalid setting", out)
	}
	if !strings.Contains(out, "error:") {
		t.Errorf("stderr output %q is missing the error tag", out)
	}
}

func TestReportErrorSkipsAlreadyReported(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, reportedError{err: errors.New("shown in the error window")})
	if buf.Len() != 0 {
		t.Errorf("already-reported error printed again: %q", buf.String())
	}
}

func TestReportErrorPrintsWrappedReported(t *testing.T) {
	// errors.As must see through wrapping so a reported error stays
	// silent even when annotated upstream.
	var buf bytes.Buffer
	wrapped := fmt.Errorf("running timer: %w", reportedError{err: errors.New("boom")})
	reportError(&buf, wrapped)
	if buf.Len() != 0 {
		t.Errorf("wrapped reported error printed again: %q", buf.String())
	}

	reportError(&buf, errors.New("plain failure"))
	if !strings.Contains(buf.String(), "plain failure") {
		t.Errorf("plain error not printed: %q", buf.String())
	}
}
