package message

import "strings"

// DN is a Distinguished Name. The codec treats it as an opaque,
// string-shaped value — it does not parse RDNs — except for trimming
// leading whitespace from a response's matchedDN, a wire-compatibility
// heuristic some deployed servers rely on (spec Open Question (c)).
type DN string

// TrimLeadingSpace returns d with leading whitespace removed, or d
// unchanged if trim is false. Used by LDAPResult encoding when
// config.Options.TrimMatchedDN is set.
func (d DN) TrimLeadingSpace(trim bool) DN {
	if !trim {
		return d
	}
	return DN(strings.TrimLeft(string(d), " \t"))
}

// String returns the DN as a plain string.
func (d DN) String() string { return string(d) }
