package check

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultExitCode(t *testing.T) {
	tests := []struct {
		name   string
		actual string
		passed bool
		code   int
	}{
		{name: "exact match", actual: "Hello World", passed: true, code: 0},
		{name: "lowercase greeting", actual: "hello world", passed: false, code: 1},
		{name: "lowercase w", actual: "Hello world", passed: false, code: 1},
		{name: "trailing space", actual: "Hello World ", passed: false, code: 1},
		{name: "leading space", actual: " Hello World", passed: false, code: 1},
		{name: "trailing newline", actual: "Hello World\n", passed: false, code: 1},
		{name: "empty output", actual: "", passed: false, code: 1},
		{name: "extra punctuation", actual: "Hello, World", passed: false, code: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Result{Expected: Expected, Actual: tt.actual}
			assert.Equal(t, tt.passed, r.Passed())
			assert.Equal(t, tt.code, r.ExitCode())
		})
	}
}

func withPlainOutput(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestAnnounce(t *testing.T) {
	withPlainOutput(t)
	var buf bytes.Buffer
	Announce(&buf)
	assert.Equal(t, "Running Hello World Test...\n", buf.String())
}

func TestReportPass(t *testing.T) {
	withPlainOutput(t)
	var buf bytes.Buffer
	Report(&buf, Result{Expected: Expected, Actual: "Hello World"})
	want := "✓ Test passed: Output matches expected value\n" +
		"  Expected: 'Hello World'\n" +
		"  Got:      'Hello World'\n"
	require.Equal(t, want, buf.String())
}

func TestReportFail(t *testing.T) {
	withPlainOutput(t)
	var buf bytes.Buffer
	Report(&buf, Result{Expected: Expected, Actual: "hello world"})
	want := "✗ Test failed: Output does not match expected value\n" +
		"  Expected: 'Hello World'\n" +
		"  Got:      'hello world'\n"
	require.Equal(t, want, buf.String())
}

// The quote columns of the two detail lines line up so a reader can diff the
// values by eye.
func TestReportAlignment(t *testing.T) {
	withPlainOutput(t)
	var buf bytes.Buffer
	Report(&buf, Result{Expected: Expected, Actual: "x"})
	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 3)
	expCol := bytes.IndexByte(lines[1], '\'')
	gotCol := bytes.IndexByte(lines[2], '\'')
	assert.Equal(t, expCol, gotCol)
}
