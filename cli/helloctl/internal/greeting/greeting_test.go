package greeting

import "testing"

func TestMessage(t *testing.T) {
	want := "Hello World"
	if got := Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestMessageIsStable(t *testing.T) {
	if Message() != Message() {
		t.Fatalf("Message() is not deterministic")
	}
}
