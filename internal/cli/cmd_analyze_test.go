package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wikecd/revhist/internal/cli"
)

func TestRun_AnalyzeJSONAndWarnOnUnreadableFile(t *testing.T) {
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
	}, "\n")

	if err := os.WriteFile(jsonlPath, []byte(jsonl), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, errOut, code := runCLI(t, dir, "--cwd", dir, "compress", "-t", "doc", "-i", jsonlPath, "-o", artifactPath)
	if code != cli.ExitSuccess {
		t.Fatalf("compress failed with exit %d: %s", code, errOut)
	}

	// A non-artifact file alongside the real one should be reported as a
	// warning, not a fatal error — but still flips exit code to 1, per
	// IO.Finish's documented "any warnings -> exit 1" contract.
	junkPath := filepath.Join(artifactDir, "not-an-artifact.txt")
	if err := os.WriteFile(junkPath, []byte("not gzip json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, errOut, code := runCLI(t, dir, "--cwd", dir, "analyze", "--dir", artifactDir, "--json")
	if code != cli.ExitFailure {
		t.Fatalf("expected exit %d (warnings present), got %d: stdout=%q stderr=%q", cli.ExitFailure, code, out, errOut)
	}

	if !strings.Contains(errOut, "not-an-artifact.txt") {
		t.Fatalf("expected warning naming the unreadable file, got stderr=%q", errOut)
	}

	if !strings.Contains(out, `"revisions":2`) {
		t.Fatalf("expected JSON output with the valid artifact's stats, got %q", out)
	}
}
