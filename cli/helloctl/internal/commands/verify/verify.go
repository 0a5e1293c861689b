package verify

import (
	"fmt"
	"strings"
	"time"

	"hellokit/cli/helloctl/internal/check"
	"hellokit/cli/helloctl/internal/cmdregistry"
	"hellokit/cli/helloctl/internal/execx"
)

// Register adds the verify command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("verify", handle)
}

func handle(ctx *cmdregistry.Context) error {
	if strings.TrimSpace(ctx.Exe) == "" {
		return fmt.Errorf("executable path not provided")
	}
	if ctx.DryRun {
		fmt.Fprintln(ctx.Stderr, "+ "+ctx.Exe)
		return nil
	}
	cctx, cancel := execx.WithTimeout(30 * time.Second)
	defer cancel()
	out, res := execx.Capture(cctx, ctx.Exe)
	if res.Code != 0 {
		return fmt.Errorf("self-test exited %d", res.Code)
	}
	for _, want := range []string{check.StartLine, check.PassLine, "'" + check.Expected + "'"} {
		if !strings.Contains(out, want) {
			return fmt.Errorf("self-test output missing %q", want)
		}
	}
	fmt.Fprintln(ctx.Stdout, "verify: OK")
	return nil
}
