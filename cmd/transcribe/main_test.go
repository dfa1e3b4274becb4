package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heartmarshall/myenglish-g2p/internal/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func writeDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cmudict.dict")
	content := "THE  DH AH0\nCAT  K AE1 T\nHELLO  HH AH0 L OW1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dict: %v", err)
	}
	return path
}

func TestRun_FallbackOnly(t *testing.T) {
	got, err := runCLI(t, "", "-no-dict", "cat", "night")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/kæt/ /naɪt/\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_LocalDictionary(t *testing.T) {
	got, err := runCLI(t, "", "-dict", writeDict(t), "Hello,", "the", "cat!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/həlˈoʊ/ /ðə/ /kæt/\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_StdinLines(t *testing.T) {
	got, err := runCLI(t, "cat\n\nthe cat\n", "-dict", writeDict(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/kæt/\n/ðə/ /kæt/\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_JSON(t *testing.T) {
	got, err := runCLI(t, "", "-dict", writeDict(t), "-format", "json", "cat", "dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var results []domain.G2PResult
	if err := json.Unmarshal([]byte(got), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Source != domain.SourceDictionary || results[1].Source != domain.SourceFallback {
		t.Errorf("unexpected sources: %q, %q", results[0].Source, results[1].Source)
	}
}

func TestRun_Segment(t *testing.T) {
	got, err := runCLI(t, "", "-no-dict", "-segment", "ˈnʌtˌʃɛl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ˈ n ʌ t ˌ ʃ ɛ l\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_MissingDictionaryFallsBack(t *testing.T) {
	got, err := runCLI(t, "", "-dict", filepath.Join(t.TempDir(), "absent.dict"), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/kæt/\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_BadUsage(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "xml", "cat"},
		{"-no-such-flag"},
	} {
		if _, err := runCLI(t, "", args...); !errors.Is(err, errUsage) {
			t.Errorf("args %v: expected usage error, got %v", args, err)
		}
	}
}

func TestRun_Version(t *testing.T) {
	got, err := runCLI(t, "", "-version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "dev") {
		t.Errorf("output = %q", got)
	}
}

func TestRun_Table(t *testing.T) {
	got, err := runCLI(t, "", "-dict", writeDict(t), "-format", "table", "the", "dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Word", "IPA", "Source", "/ðə/", "dictionary", "dog", "fallback"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "SOURCE") {
		t.Errorf("headers should keep their case:\n%s", got)
	}
}

func TestRun_SegmentTable(t *testing.T) {
	got, err := runCLI(t, "naɪt\nk@t\n", "-no-dict", "-segment", "-format", "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Input", "Unknown", "n aɪ t", "k @ t"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
