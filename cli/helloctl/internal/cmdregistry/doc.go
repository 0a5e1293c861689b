// Package cmdregistry maps command names to handler functions sharing a
// common Context payload. Command implementations live in their own packages
// under internal/commands and register themselves here, keeping main.go
// limited to argument parsing and dispatch.
package cmdregistry
