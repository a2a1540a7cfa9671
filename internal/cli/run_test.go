package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wikecd/revhist/internal/cli"
)

func runCLI(t *testing.T, dir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var out, errOut bytes.Buffer

	fullArgs := append([]string{"wikecd"}, args...)

	code = cli.Run(strings.NewReader(""), &out, &errOut, fullArgs, map[string]string{"PWD": dir}, nil)

	return out.String(), errOut.String(), code
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out, _, code := runCLI(t, "")

	if code != cli.ExitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}

	if !strings.Contains(out, "wikecd") {
		t.Fatalf("expected usage banner, got %q", out)
	}
}

func TestRun_HelpFlagPrintsUsage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, _, code := runCLI(t, dir, "--cwd", dir, "--help")

	if code != cli.ExitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}

	if !strings.Contains(out, "wikecd") {
		t.Fatalf("expected usage banner, got %q", out)
	}
}

func TestRun_UnknownCommandIsInvalidArgument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, errOut, code := runCLI(t, dir, "--cwd", dir, "bogus-command")

	if code != cli.ExitInvalidArgument {
		t.Fatalf("expected exit %d, got %d", cli.ExitInvalidArgument, code)
	}

	if !strings.Contains(errOut, "unknown command") {
		t.Fatalf("expected unknown-command message, got %q", errOut)
	}
}

func TestRun_CompressThenAnalyzeEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	artifactDir := filepath.Join(dir, "artifacts")
	if err := os.Mkdir(artifactDir, 0o700); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	jsonlPath := filepath.Join(dir, "revs.jsonl")
	artifactPath := filepath.Join(artifactDir, "out.art")

	jsonl := strings.Join([]string{
		`{"revid":1,"timestamp":"2024-01-01T00:00:00Z","text":"a\nb\n"}`,
		`{"revid":2,"timestamp":"2024-01-01T01:00:00Z","text":"a\nc\n"}`,
		`{"revid":3,"timestamp":"2024-01-01T02:00:00Z","text":"a\nc\nd\n"}`,
	}, "\n")

	if err := os.WriteFile(jsonlPath, []byte(jsonl), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, errOut, code := runCLI(t, dir, "--cwd", dir, "compress", "-t", "doc", "-i", jsonlPath, "-o", artifactPath)
	if code != cli.ExitSuccess {
		t.Fatalf("compress failed with exit %d: %s", code, errOut)
	}

	if _, err := os.Stat(artifactPath); err != nil {
		t.Fatalf("expected artifact file to exist: %v", err)
	}

	out, errOut, code := runCLI(t, dir, "--cwd", dir, "analyze", "--dir", artifactDir)
	if code != cli.ExitSuccess {
		t.Fatalf("analyze failed with exit %d: %s", code, errOut)
	}

	if !strings.Contains(out, "revisions=3") {
		t.Fatalf("expected revision count in analyze output, got %q", out)
	}

	out, errOut, code = runCLI(t, dir, "--cwd", dir, "retrieve", "-a", artifactPath, "--at", "2")
	if code != cli.ExitSuccess {
		t.Fatalf("retrieve failed with exit %d: %s", code, errOut)
	}

	if !strings.Contains(out, "a\nc\nd") {
		t.Fatalf("expected reconstructed text, got %q", out)
	}
}

func TestRun_CompressMissingRequiredFlagsIsInvalidArgument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, code := runCLI(t, dir, "--cwd", dir, "compress")

	if code != cli.ExitInvalidArgument {
		t.Fatalf("expected exit %d, got %d", cli.ExitInvalidArgument, code)
	}
}
