package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Result carries the exit code and raw error from a finished command.
type Result struct {
	Code int
	Err  error
}

func Run(name string, args ...string) Result {
	return RunCtx(context.Background(), name, args...)
}

func RunCtx(ctx context.Context, name string, args ...string) Result {
	if os.Getenv("HELLOKIT_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else if ctx.Err() == context.DeadlineExceeded {
			code = 124
		} else {
			code = 1
		}
	}
	return Result{Code: code, Err: err}
}

// Capture runs a command and returns its stdout along with the exit result.
// Stderr passes through to the host so producer diagnostics stay visible.
func Capture(ctx context.Context, name string, args ...string) (string, Result) {
	if os.Getenv("HELLOKIT_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else if ctx.Err() == context.DeadlineExceeded {
			code = 124
		} else {
			code = 1
		}
	}
	return string(out), Result{Code: code, Err: err}
}

// Host executes a host binary with a default 10 minute timeout.
// When dry is true it only prints the command to stderr.
func Host(dry bool, name string, args ...string) Result {
	if dry {
		fmt.Fprintln(os.Stderr, "+ "+name+" "+strings.Join(args, " "))
		return Result{}
	}
	ctx, cancel := WithTimeout(10 * time.Minute)
	defer cancel()
	return RunCtx(ctx, name, args...)
}

func WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
