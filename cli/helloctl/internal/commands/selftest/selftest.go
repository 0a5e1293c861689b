package selftest

import (
	"hellokit/cli/helloctl/internal/check"
	"hellokit/cli/helloctl/internal/cmdregistry"
	"hellokit/cli/helloctl/internal/greeting"
)

// Register adds the selftest command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("selftest", handle)
}

func handle(ctx *cmdregistry.Context) error {
	check.Announce(ctx.Stdout)
	res := check.Result{Expected: check.Expected, Actual: greeting.Message()}
	check.Report(ctx.Stdout, res)
	if code := res.ExitCode(); code != 0 {
		return &cmdregistry.ExitError{Code: code}
	}
	return nil
}
