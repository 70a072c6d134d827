package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHandleCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.yml",
		"Header:\n  Type: ITEM_DB\n  Version: 3\nBody:\n  - Id: 1\n")
	stale := writeFixture(t, dir, "stale.yml",
		"Header:\n  Type: ITEM_DB\n  Version: 2\nBody: []\n")
	wrongType := writeFixture(t, dir, "wrong.yml",
		"Header:\n  Type: MOB_DB\n  Version: 3\nBody: []\n")

	t.Run("compatible file reports OK", func(t *testing.T) {
		var out bytes.Buffer
		err := handleCheck([]string{"-type", "ITEM_DB", "-version", "3", "-min-version", "1", good}, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "OK") {
			t.Errorf("expected OK verdict, got: %s", out.String())
		}
	})

	t.Run("stale file reports OK with a warning", func(t *testing.T) {
		var out bytes.Buffer
		err := handleCheck([]string{"-type", "ITEM_DB", "-version", "3", "-min-version", "1", stale}, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "warning") {
			t.Errorf("expected a staleness warning, got: %s", out.String())
		}
	})

	t.Run("incompatible file fails the check", func(t *testing.T) {
		var out bytes.Buffer
		err := handleCheck([]string{"-type", "ITEM_DB", "-version", "3", wrongType}, &out)
		if err == nil {
			t.Fatal("expected an error for a type-mismatched file")
		}
		if !strings.Contains(out.String(), "FAIL") {
			t.Errorf("expected FAIL verdict, got: %s", out.String())
		}
	})

	t.Run("json report round-trips", func(t *testing.T) {
		var out bytes.Buffer
		err := handleCheck([]string{"-type", "ITEM_DB", "-version", "3", "-min-version", "1", "-json", good, stale}, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var reports []fileReport
		if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if len(reports) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(reports))
		}
		if !reports[0].OK || reports[0].Version != 3 {
			t.Errorf("unexpected first report: %+v", reports[0])
		}
		if !reports[1].OK || len(reports[1].Issues) == 0 {
			t.Errorf("stale file should pass with issues attached: %+v", reports[1])
		}
	})

	t.Run("missing arguments are rejected", func(t *testing.T) {
		var out bytes.Buffer
		if err := handleCheck([]string{"-type", "ITEM_DB", "-version", "3"}, &out); err == nil {
			t.Error("expected an error when no files are given")
		}
		if err := handleCheck([]string{"-version", "3", good}, &out); err == nil {
			t.Error("expected an error when -type is missing")
		}
		if err := handleCheck([]string{"-type", "ITEM_DB", good}, &out); err == nil {
			t.Error("expected an error when -version is missing")
		}
	})
}

func TestFormatMessage(t *testing.T) {
	got := formatMessage("database version is outdated", []any{"version", 2, "current", 3})
	want := "database version is outdated version=2 current=3"
	if got != want {
		t.Errorf("formatMessage() = %q, want %q", got, want)
	}

	if got := formatMessage("plain", nil); got != "plain" {
		t.Errorf("formatMessage() = %q, want %q", got, "plain")
	}
}
