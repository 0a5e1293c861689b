package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// CmdResult captures stdout, stderr, and the exit status from a finished command.
type CmdResult struct {
	Stdout string
	Stderr string
	Code   int
	Err    error
}

// Success reports whether the underlying command exited without error.
func (r CmdResult) Success() bool {
	return r.Err == nil
}

// BinFixture builds the project binaries into a scratch directory and runs
// them with a controlled environment for end-to-end tests.
type BinFixture struct {
	t        *testing.T
	repoRoot string

	// Helloctl and Hello are the paths of the freshly built binaries.
	Helloctl string
	Hello    string

	envBase map[string]string
}

// NewBinFixture compiles helloctl and hello. Tests skip when the go tool is
// not on PATH. The fixture points HELLOKIT_CONFIG at a missing file so the
// host user's config cannot leak into assertions.
func NewBinFixture(t *testing.T) *BinFixture {
	t.Helper()

	RequireBinary(t, "go")

	repoRoot, err := findRepoRoot()
	if err != nil {
		t.Fatalf("detect repo root: %v", err)
	}

	binDir := t.TempDir()
	f := &BinFixture{
		t:        t,
		repoRoot: repoRoot,
		Helloctl: filepath.Join(binDir, "helloctl"),
		Hello:    filepath.Join(binDir, "hello"),
	}
	f.build(f.Helloctl, "./cli/helloctl")
	f.build(f.Hello, "./cli/hello")

	envBase := mapFromEnviron(os.Environ())
	envBase["HELLOKIT_CONFIG"] = filepath.Join(binDir, "no-config.yaml")
	f.envBase = envBase

	return f
}

func (f *BinFixture) build(out, pkg string) {
	f.t.Helper()
	cmd := exec.Command("go", "build", "-o", out, pkg)
	cmd.Dir = f.repoRoot
	if b, err := cmd.CombinedOutput(); err != nil {
		f.t.Fatalf("build %s: %v\n%s", pkg, err, b)
	}
}

// Environ returns the base environment merged with overrides. An empty
// override value removes the variable.
func (f *BinFixture) Environ(overrides map[string]string) []string {
	env := make(map[string]string, len(f.envBase)+len(overrides))
	for k, v := range f.envBase {
		env[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			delete(env, k)
			continue
		}
		env[k] = v
	}
	return mapToEnviron(env)
}

// Run executes helloctl with the provided arguments and environment overrides.
func (f *BinFixture) Run(overrides map[string]string, args ...string) CmdResult {
	return f.RunContext(context.Background(), overrides, args...)
}

// RunContext executes helloctl with a context for timeout control.
func (f *BinFixture) RunContext(ctx context.Context, overrides map[string]string, args ...string) CmdResult {
	return f.runBinary(ctx, f.Helloctl, overrides, args...)
}

// RunHello executes the standalone producer binary.
func (f *BinFixture) RunHello(args ...string) CmdResult {
	return f.runBinary(context.Background(), f.Hello, nil, args...)
}

func (f *BinFixture) runBinary(ctx context.Context, path string, overrides map[string]string, args ...string) CmdResult {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = f.Environ(overrides)
	cmd.Dir = f.repoRoot
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		code = -1
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		}
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), Code: code, Err: err}
}

// ScratchTree writes the given relative path to content mapping under a new
// temp dir and returns its root.
func (f *BinFixture) ScratchTree(files map[string]string) string {
	f.t.Helper()
	root := f.t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			f.t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			f.t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

// RequireBinary skips the test when the named tool is not installed.
func RequireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if st, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !st.IsDir() {
			if _, err := os.Stat(filepath.Join(dir, "cli", "helloctl")); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("repository root not found")
}

func mapFromEnviron(env []string) map[string]string {
	m := make(map[string]string, len(env))
	for _, kv := range env {
		if kv == "" {
			continue
		}
		if idx := strings.IndexRune(kv, '='); idx >= 0 {
			m[kv[:idx]] = kv[idx+1:]
		}
	}
	return m
}

func mapToEnviron(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}
