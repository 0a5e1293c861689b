package sweepcmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"hellokit/cli/helloctl/internal/cmdregistry"
	"hellokit/cli/helloctl/internal/execx"
	"hellokit/cli/helloctl/internal/plan"
	"hellokit/cli/helloctl/internal/sweep"
)

// Register adds the sweep command family to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("sweep", handleSweep)
	r.Register("sweep-apply", handleApply)
	r.Register("sweep-validate", handleValidate)
}

func handleSweep(ctx *cmdregistry.Context) error {
	fs := pflag.NewFlagSet("sweep", pflag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "only report files that would be moved")
	table := fs.Bool("table", ctx.Config.Sweep.Table, "render the move summary as a table")
	watch := fs.Bool("watch", false, "keep sweeping as files appear")
	fs.SetOutput(ctx.Stderr)
	if err := fs.Parse(ctx.Args); err != nil {
		return err
	}
	argv := fs.Args()
	if len(argv) != 2 {
		return fmt.Errorf("Usage: sweep <target-dir> <keyword> [--dry-run] [--table] [--watch]")
	}
	req, err := sweep.Request{
		Target:  argv[0],
		Keyword: argv[1],
		Policy:  sweep.NewPolicy(ctx.Config.Sweep.Protected),
	}.Normalize()
	if err != nil {
		return err
	}
	if *watch {
		if *dryRun || ctx.DryRun {
			return fmt.Errorf("--watch cannot be combined with --dry-run")
		}
		sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.WithFields(log.Fields{"target": req.Target, "keyword": req.Keyword}).Info("watching for new files")
		return sweep.Watch(sctx, req)
	}
	return runOnce(ctx, req, *dryRun || ctx.DryRun, *table)
}

// runOnce performs one sweep and prints its report.
func runOnce(ctx *cmdregistry.Context, req sweep.Request, dryRun, table bool) error {
	matches, err := sweep.Scan(req)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintf(ctx.Stdout, "No files containing '%s' were found under %s.\n", req.Keyword, req.Target)
		return nil
	}
	if dryRun {
		fmt.Fprintln(ctx.Stdout, "Dry run: the following files would be moved:")
		for _, m := range matches {
			fmt.Fprintf(ctx.Stdout, " - %s\n", m)
		}
		return nil
	}
	moves, err := sweep.MoveAll(req, matches)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Moved %d file(s) into '%s'.\n", len(moves), req.Dest())
	if table {
		renderTable(ctx.Stdout, moves)
	} else {
		for _, m := range moves {
			fmt.Fprintf(ctx.Stdout, " - %s -> %s\n", m.Src, m.Dst)
		}
	}
	runPostSweepHook(ctx, req.Dest())
	return nil
}

func renderTable(w io.Writer, moves []sweep.Move) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Source", "Destination"})
	for _, m := range moves {
		t.Append([]string{m.Src, m.Dst})
	}
	t.Render()
}

// runPostSweepHook runs the configured post-sweep command, exporting the
// destination directory in its environment. Hook failures are logged, not
// fatal.
func runPostSweepHook(ctx *cmdregistry.Context, dest string) {
	script := strings.TrimSpace(ctx.Config.Hooks.PostSweep)
	if script == "" {
		return
	}
	restore := withSweepDest(dest)
	defer restore()
	log.WithField("hook", script).Debug("running post-sweep hook")
	if res := execx.Host(false, "sh", "-c", script); res.Code != 0 {
		log.WithError(res.Err).WithField("hook", script).Warn("post-sweep hook failed")
	}
}

func withSweepDest(dest string) func() {
	prev, had := os.LookupEnv("HELLOKIT_SWEEP_DEST")
	_ = os.Setenv("HELLOKIT_SWEEP_DEST", dest)
	return func() {
		if had {
			_ = os.Setenv("HELLOKIT_SWEEP_DEST", prev)
		} else {
			_ = os.Unsetenv("HELLOKIT_SWEEP_DEST")
		}
	}
}

func handleApply(ctx *cmdregistry.Context) error {
	path, err := planPath("sweep-apply", ctx.Args)
	if err != nil {
		return err
	}
	f, err := plan.Read(path)
	if err != nil {
		return err
	}
	warns, errs := plan.Validate(f)
	for _, w := range warns {
		fmt.Fprintln(ctx.Stderr, "warning: "+w)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(ctx.Stderr, "error: "+e)
		}
		return fmt.Errorf("plan has %d error(s)", len(errs))
	}
	for _, rule := range f.Rules {
		req, err := sweep.Request{
			Target:  rule.Target,
			Keyword: rule.Keyword,
			Policy:  sweep.NewPolicy(ctx.Config.Sweep.Protected),
		}.Normalize()
		if err != nil {
			return err
		}
		if err := runOnce(ctx, req, rule.DryRun || ctx.DryRun, rule.Table || ctx.Config.Sweep.Table); err != nil {
			return err
		}
	}
	return nil
}

func handleValidate(ctx *cmdregistry.Context) error {
	path, err := planPath("sweep-validate", ctx.Args)
	if err != nil {
		return err
	}
	f, err := plan.Read(path)
	if err != nil {
		return err
	}
	warns, errs := plan.Validate(f)
	for _, w := range warns {
		fmt.Fprintln(ctx.Stdout, "warning: "+w)
	}
	for _, e := range errs {
		fmt.Fprintln(ctx.Stdout, "error: "+e)
	}
	if len(errs) > 0 {
		return &cmdregistry.ExitError{Code: 1}
	}
	fmt.Fprintln(ctx.Stdout, "plan OK")
	return nil
}

func planPath(cmd string, args []string) (string, error) {
	path := ""
	for i := 0; i < len(args); i++ {
		if args[i] == "--file" && i+1 < len(args) {
			path = args[i+1]
			i++
		}
	}
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("Usage: %s --file <plan.yaml>", cmd)
	}
	return path, nil
}
