package greeting

// Message returns the canonical greeting. It produces the value and nothing
// else; printing and verification belong to the callers.
func Message() string {
	return "Hello World"
}
