package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"hellokit/cli/helloctl/internal/cmdregistry"
	checkcmd "hellokit/cli/helloctl/internal/commands/checkcmd"
	preflightcmd "hellokit/cli/helloctl/internal/commands/preflight"
	selftestcmd "hellokit/cli/helloctl/internal/commands/selftest"
	sweepcmd "hellokit/cli/helloctl/internal/commands/sweepcmd"
	verifycmd "hellokit/cli/helloctl/internal/commands/verify"
	versioncmd "hellokit/cli/helloctl/internal/commands/versioncmd"
	"hellokit/cli/helloctl/internal/config"
)

func usage() {
	fmt.Fprintf(os.Stderr, `helloctl — Hello World smoke-test toolkit
Usage: helloctl [command] [args]

Running without a command executes the built-in self-test: exit 0 when
the greeting matches, 1 when it does not.

Commands:
  selftest        run the built-in Hello World check
  check [--expect STR] [--timeout DUR] <cmd> [args...]
                  run a producer command and compare its output
  sweep <target-dir> <keyword> [--dry-run] [--table] [--watch]
                  move matching files into a keyword folder
  sweep-apply --file <plan.yaml>
  sweep-validate --file <plan.yaml>
  preflight       host checks: config, scratch dir, sh
  verify          re-run the self-test as a child process
  version         print build information

Flags:
  --dry-run       print commands and planned moves without executing
  --no-color      disable colored report markers

Environment:
  HELLOKIT_CONFIG     path to config.yaml
  HELLOKIT_LOG_LEVEL  trace|debug|info|warn|error
  HELLOKIT_NO_COLOR   set to 1 to disable color
  HELLOKIT_DEBUG=1    print executed commands
`)
}

func main() {
	var dryRun bool
	var noColor bool

	// rudimentary global flag parsing before subcmd
	args := os.Args[1:]
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch a {
		case "--dry-run":
			dryRun = true
		case "--no-color":
			noColor = true
		case "-h", "--help", "help":
			usage()
			return
		default:
			out = append(out, a)
		}
	}
	args = out

	cfg, _, cfgErr := config.Read()
	setupLogging(cfg.LogLevel)
	if noColor || cfg.NoColor {
		color.NoColor = true
	}
	if cfgErr != nil {
		// The bare invocation must only exit 0 or 1, so a broken config
		// cannot abort the self-test path.
		if len(args) > 0 {
			die(cfgErr.Error())
		}
		log.WithError(cfgErr).Warn("config unreadable, continuing with defaults")
	}

	exe, _ := os.Executable()

	registry := cmdregistry.New()
	selftestcmd.Register(registry)
	checkcmd.Register(registry)
	sweepcmd.Register(registry)
	preflightcmd.Register(registry)
	verifycmd.Register(registry)
	versioncmd.Register(registry)

	cmd := "selftest"
	var sub []string
	if len(args) > 0 {
		cmd = args[0]
		sub = args[1:]
	}

	handler, ok := registry.Lookup(cmd)
	if !ok {
		fmt.Fprintln(os.Stderr, "unknown command: "+cmd)
		usage()
		os.Exit(2)
	}
	ctx := &cmdregistry.Context{
		DryRun: dryRun,
		Args:   sub,
		Config: cfg,
		Exe:    exe,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := handler(ctx); err != nil {
		var exit *cmdregistry.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		die(err.Error())
	}
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid log level %q, defaulting to warn", level)
		lvl = log.WarnLevel
	}
	log.SetLevel(lvl)
}

func die(msg string) { fmt.Fprintln(os.Stderr, msg); os.Exit(2) }
