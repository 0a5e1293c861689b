package selftest

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hellokit/cli/helloctl/internal/cmdregistry"
)

func TestSelftestOutput(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	r := cmdregistry.New()
	Register(r)
	h, ok := r.Lookup("selftest")
	require.True(t, ok)

	var stdout, stderr bytes.Buffer
	ctx := &cmdregistry.Context{Stdout: &stdout, Stderr: &stderr}
	err := h(ctx)
	require.NoError(t, err)

	want := "Running Hello World Test...\n" +
		"✓ Test passed: Output matches expected value\n" +
		"  Expected: 'Hello World'\n" +
		"  Got:      'Hello World'\n"
	assert.Equal(t, want, stdout.String())
	assert.Empty(t, stderr.String())
}
