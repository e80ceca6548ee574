package names

import "strings"

// Resolver maps raw name spellings to canonical identities.
//
// Pool is a linear scan; an indexed matcher can replace it behind this
// interface when rosters grow past classroom size.
type Resolver interface {
	// Resolve returns the canonical name for raw, registering raw as a
	// new canonical name when nothing matches.
	Resolve(raw string) (canonical string, created bool)
	// Known returns canonical names in insertion order.
	Known() []string
	// Aliases returns the other spellings merged into canonical.
	Aliases(canonical string) []string
}

type entry struct {
	name       string
	normalized string
}

// Pool is an insertion-ordered set of canonical names. The zero value is
// not usable; create one with NewPool.
type Pool struct {
	entries []entry
	aliases map[string][]string
}

var _ Resolver = (*Pool)(nil)

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{aliases: make(map[string][]string)}
}

// Resolve returns the first known name (in insertion order) similar to raw.
// Ties are not ranked: the earliest match wins.
func (p *Pool) Resolve(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	normalized := Normalize(name)
	for _, e := range p.entries {
		if e.name == name || similarNormalized(normalized, e.normalized) {
			p.addAlias(e.name, name)
			return e.name, false
		}
	}
	p.entries = append(p.entries, entry{name: name, normalized: normalized})
	return name, true
}

// Known returns canonical names in insertion order.
func (p *Pool) Known() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.name
	}
	return out
}

// Aliases returns the distinct spellings merged into canonical, in the
// order they were first seen.
func (p *Pool) Aliases(canonical string) []string {
	return append([]string(nil), p.aliases[canonical]...)
}

// Len returns the number of canonical names.
func (p *Pool) Len() int {
	return len(p.entries)
}

func (p *Pool) addAlias(canonical, spelling string) {
	if spelling == canonical {
		return
	}
	for _, a := range p.aliases[canonical] {
		if a == spelling {
			return
		}
	}
	p.aliases[canonical] = append(p.aliases[canonical], spelling)
}

// Match resolves candidate against known without mutating anything. It
// returns the first similar known name, or candidate itself and false.
func Match(candidate string, known []string) (string, bool) {
	normalized := Normalize(candidate)
	for _, k := range known {
		if k == candidate || similarNormalized(normalized, Normalize(k)) {
			return k, true
		}
	}
	return candidate, false
}
