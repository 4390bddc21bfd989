package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhyannv/chatgpt-cli/pkg/chatgpt"
)

func TestResolveConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := resolveConfig(&cobra.Command{}, "", 0, false)
	if err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the missing variable: %v", err)
	}
}

func TestResolveConfigModelPrecedence(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "k")

	t.Setenv("OPENAI_MODEL", "")
	cfg, err := resolveConfig(&cobra.Command{}, "", 0, false)
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.Model != chatgpt.DefaultModel {
		t.Errorf("default model = %q, want %q", cfg.Model, chatgpt.DefaultModel)
	}

	t.Setenv("OPENAI_MODEL", "env-model")
	cfg, err = resolveConfig(&cobra.Command{}, "", 0, false)
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.Model != "env-model" {
		t.Errorf("env model = %q, want env-model", cfg.Model)
	}

	cfg, err = resolveConfig(&cobra.Command{}, "flag-model", 0, false)
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.Model != "flag-model" {
		t.Errorf("flag model = %q, flag must win over env", cfg.Model)
	}
}

func TestResolveConfigBaseURLOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1/")

	cfg, err := resolveConfig(&cobra.Command{}, "", 0, false)
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.APIURL != "http://localhost:9999/v1/chat/completions" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
}

func startCompletionServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCmdSingleShotFromArgument(t *testing.T) {
	srv := startCompletionServer(t, `{"choices":[{"message":{"role":"assistant","content":"42"}}]}`)
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"what is the answer?"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.String() != "42\n" {
		t.Errorf("stdout = %q, want reply plus newline", out.String())
	}
}

func TestRootCmdSingleShotFromStdin(t *testing.T) {
	srv := startCompletionServer(t, `{"choices":[{"message":{"role":"assistant","content":"hi"}}]}`)
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("  hello  \n"))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.String() != "hi\n" {
		t.Errorf("stdout = %q, want reply plus newline", out.String())
	}
}

func TestRootCmdInteractiveMode(t *testing.T) {
	srv := startCompletionServer(t, `{"choices":[{"message":{"role":"assistant","content":"hey"}}]}`)
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("hello\nexit\n"))
	cmd.SetArgs([]string{"-i"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out.String(), "You: ChatGPT: hey\n") {
		t.Errorf("interactive output = %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "You: ") {
		t.Errorf("sentinel must end output at the prompt: %q", out.String())
	}
}

func TestRootCmdCompletionFailureExitsZero(t *testing.T) {
	srv := startCompletionServer(t, `not json at all`)
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"hello", "--timeout", (2 * time.Second).String()})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("per-turn failure must not fail the command: %v", err)
	}
	if out.String() != "" {
		t.Errorf("stdout must stay empty on failure, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: parse error: Error parsing the API response") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRootCmdMissingAPIKeyFails(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"hello"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected configuration error for missing API key")
	}
}
