// Package preflight implements the "preflight" host diagnostics command.
// It checks that the config is readable, that the temp dir supports the
// file operations sweeps need, and that a shell is available for hooks.
package preflight
