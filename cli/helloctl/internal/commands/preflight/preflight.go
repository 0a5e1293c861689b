package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"hellokit/cli/helloctl/internal/cmdregistry"
	"hellokit/cli/helloctl/internal/config"
	"hellokit/cli/helloctl/internal/execx"
)

// Register adds the preflight command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("preflight", handle)
}

func handle(ctx *cmdregistry.Context) error {
	ok := true
	if _, dir, err := config.Read(); err != nil {
		fmt.Fprintf(ctx.Stderr, "[preflight] config unreadable: %v\n", err)
		ok = false
	} else if dir == "" {
		fmt.Fprintln(ctx.Stdout, "[preflight] config: OK (defaults)")
	} else {
		fmt.Fprintf(ctx.Stdout, "[preflight] config: OK (%s)\n", dir)
	}
	if err := checkScratch(); err != nil {
		fmt.Fprintf(ctx.Stderr, "[preflight] scratch dir: %v\n", err)
		ok = false
	} else {
		fmt.Fprintln(ctx.Stdout, "[preflight] scratch dir: OK (create and rename)")
	}
	if _, res := execx.Capture(context.Background(), "sh", "-c", "true"); res.Code != 0 {
		if strings.TrimSpace(ctx.Config.Hooks.PostSweep) != "" {
			fmt.Fprintln(ctx.Stderr, "[preflight] sh not available but a post-sweep hook is configured")
			ok = false
		} else {
			fmt.Fprintln(ctx.Stderr, "[preflight] sh not available (only needed for hooks and check producers)")
		}
	} else {
		fmt.Fprintln(ctx.Stdout, "[preflight] sh: OK")
	}
	if color.NoColor {
		fmt.Fprintln(ctx.Stdout, "[preflight] color: disabled (not a terminal or suppressed)")
	} else {
		fmt.Fprintln(ctx.Stdout, "[preflight] color: OK")
	}
	if !ok {
		return fmt.Errorf("preflight checks failed")
	}
	return nil
}

// checkScratch verifies the temp dir supports the file operations sweeps
// rely on: creating a file and renaming it within the same directory.
func checkScratch() error {
	dir, err := os.MkdirTemp("", "helloctl-preflight-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	src := filepath.Join(dir, "probe")
	if err := os.WriteFile(src, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Rename(src, filepath.Join(dir, "probe-renamed"))
}
