// Package selftest implements the default command: produce the greeting,
// compare it against the expected value, and report the verdict. Running the
// binary with no arguments lands here.
package selftest
