// Package verify registers the "verify" command. It reuses the current
// binary to run the self-test as a child process and confirms the report
// lands on the passing path.
package verify
