package versioncmd

import (
	"fmt"

	"hellokit/cli/helloctl/internal/cmdregistry"
	"hellokit/cli/helloctl/internal/version"
)

// Register adds the version command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("version", handle)
}

func handle(ctx *cmdregistry.Context) error {
	fmt.Fprintln(ctx.Stdout, version.String())
	return nil
}
