package sweep

import "strings"

// Policy decides which directory names the walker may enter. A nil policy
// blocks nothing.
type Policy struct {
	protected map[string]struct{}
}

// NewPolicy builds a policy from directory names. Blank names are dropped.
func NewPolicy(names []string) *Policy {
	p := &Policy{protected: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			p.protected[n] = struct{}{}
		}
	}
	return p
}

// Blocked reports whether a directory name must not be entered.
func (p *Policy) Blocked(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.protected[name]
	return ok
}
