package checkcmd

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"hellokit/cli/helloctl/internal/check"
	"hellokit/cli/helloctl/internal/cmdregistry"
	"hellokit/cli/helloctl/internal/execx"
)

// Register adds the check command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("check", handle)
}

func handle(ctx *cmdregistry.Context) error {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	expect := fs.String("expect", check.Expected, "expected producer output")
	timeout := fs.Duration("timeout", 30*time.Second, "producer run timeout")
	fs.SetOutput(ctx.Stderr)
	// Flag parsing stops at the producer command so its own flags pass through.
	fs.SetInterspersed(false)
	if err := fs.Parse(ctx.Args); err != nil {
		return err
	}
	argv := fs.Args()
	if len(argv) == 0 {
		return fmt.Errorf("Usage: check [--expect STR] [--timeout DUR] <cmd> [args...]")
	}
	if ctx.DryRun {
		fmt.Fprintln(ctx.Stderr, "+ "+strings.Join(argv, " "))
		return nil
	}

	runCtx, cancel := execx.WithTimeout(*timeout)
	defer cancel()
	out, res := execx.Capture(runCtx, argv[0], argv[1:]...)
	if res.Err != nil {
		log.WithError(res.Err).WithField("producer", argv[0]).Warn("producer did not exit cleanly")
	}

	check.Announce(ctx.Stdout)
	cres := check.Result{Expected: *expect, Actual: trimTrailingNewline(out)}
	check.Report(ctx.Stdout, cres)
	if code := cres.ExitCode(); code != 0 {
		return &cmdregistry.ExitError{Code: code}
	}
	return nil
}

// trimTrailingNewline drops the single conventional terminator a producer
// prints after its value. Inner whitespace stays significant.
func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
