package exec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestRealRunner_ExitCode(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name       string
		args       []string
		expectCode int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	r := NewRealRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Run(context.Background(), "sh", tt.args, RunOpts{})
			if err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if result.ExitCode != tt.expectCode {
				t.Errorf("exit code = %d, want %d", result.ExitCode, tt.expectCode)
			}
		})
	}
}

func TestRealRunner_CapturesStreams(t *testing.T) {
	skipOnWindows(t)

	result, err := NewRealRunner().Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2; exit 3"}, RunOpts{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.TrimSpace(result.Stdout) != "out" {
		t.Errorf("stdout = %q, want %q", result.Stdout, "out\n")
	}
	if strings.TrimSpace(result.Stderr) != "err" {
		t.Errorf("stderr = %q, want %q", result.Stderr, "err\n")
	}
	if result.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", result.ExitCode)
	}
}

func TestRealRunner_Dir(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := NewRealRunner().Run(context.Background(), "ls", nil, RunOpts{Dir: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(result.Stdout, "marker.txt") {
		t.Errorf("stdout = %q, want listing of %s", result.Stdout, dir)
	}
}

func TestRealRunner_BinaryNotFound(t *testing.T) {
	_, err := NewRealRunner().Run(context.Background(), "definitely-not-a-real-binary-xyz", nil, RunOpts{})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}
