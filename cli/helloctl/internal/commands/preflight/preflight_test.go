package preflight

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"hellokit/cli/helloctl/internal/cmdregistry"
)

func runPreflight(t *testing.T) (string, string, error) {
	t.Helper()
	r := cmdregistry.New()
	Register(r)
	h, ok := r.Lookup("preflight")
	require.True(t, ok)

	var stdout, stderr bytes.Buffer
	err := h(&cmdregistry.Context{Stdout: &stdout, Stderr: &stderr})
	return stdout.String(), stderr.String(), err
}

func TestPreflightPasses(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skipf("sh not available: %v", err)
	}
	t.Setenv("HELLOKIT_CONFIG", "")

	stdout, stderr, err := runPreflight(t)
	require.NoError(t, err, "stderr: %s", stderr)
	require.Contains(t, stdout, "[preflight] config: OK")
	require.Contains(t, stdout, "[preflight] scratch dir: OK")
	require.Contains(t, stdout, "[preflight] sh: OK")
}

func TestPreflightFailsOnUnreadableConfig(t *testing.T) {
	t.Setenv("HELLOKIT_CONFIG", t.TempDir())

	_, stderr, err := runPreflight(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "preflight checks failed")
	require.Contains(t, stderr, "[preflight] config unreadable")
}
