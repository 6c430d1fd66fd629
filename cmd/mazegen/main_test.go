package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDotEnvReportsMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	loadDotEnv(log.New(&buf, "", 0))

	if !strings.Contains(buf.String(), "Note: .env file not loaded") {
		t.Errorf("log output = %q, want the missing .env note", buf.String())
	}
}

func TestLoadDotEnvReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("MAZEGEN_DOTENV_TEST", "")
	os.Unsetenv("MAZEGEN_DOTENV_TEST")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MAZEGEN_DOTENV_TEST=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	loadDotEnv(log.New(&buf, "", 0))

	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
	if got := os.Getenv("MAZEGEN_DOTENV_TEST"); got != "loaded" {
		t.Errorf("MAZEGEN_DOTENV_TEST = %q, want loaded", got)
	}
}

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("MAZEGEN_HONEYCOMB_API_KEY", "")
	t.Setenv("MAZEGEN_HONEYCOMB_DATASET", "")

	setupOTelEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "" {
		t.Errorf("endpoint set without an API key: %q", got)
	}

	t.Setenv("MAZEGEN_HONEYCOMB_API_KEY", "secret")
	setupOTelEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", got)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-honeycomb-team=secret,x-honeycomb-dataset=mazegen" {
		t.Errorf("headers = %q", got)
	}
}
