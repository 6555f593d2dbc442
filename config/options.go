// Package config holds the small set of options the codec recognizes.
// The codec persists no state of its own (spec §6); this is a plain value
// type, not a file-backed configuration manager.
package config

// Options configures encoder/decoder behavior. The zero value is not valid;
// use Default() to obtain sane defaults.
type Options struct {
	// MaxPDUSize bounds the size of a single decoded LDAPMessage. Decoding
	// fails with decode.ErrMaxPDUExceeded once the declared outer SEQUENCE
	// length exceeds this many bytes.
	MaxPDUSize uint32

	// AllowBinaryAttributeOption permits the ";binary" attribute option
	// suffix (RFC 4522) to appear in attribute descriptions without being
	// rejected as malformed. Attribute descriptions are carried as opaque
	// strings throughout this codec (see DESIGN.md, "AllowBinaryAttributeOption
	// is intentionally inert"), so this has no effect on decode behavior;
	// it is part of the external configuration surface for callers that
	// enforce RFC 4522 option syntax on the decoded strings themselves.
	AllowBinaryAttributeOption bool

	// StrictStringValidation, when true, makes invalid UTF-8 in a
	// string-typed field (DN, attribute description, LDAPString) a decode
	// error instead of passing the bytes through unchanged.
	StrictStringValidation bool

	// TrimMatchedDN trims leading whitespace from LDAPResult.MatchedDN on
	// encode, preserving wire-level compatibility with servers that emit
	// it with leading space. See DESIGN.md, Open Question (c).
	TrimMatchedDN bool
}

// DefaultMaxPDUSize is 2 MiB, the spec's default PDU size ceiling.
const DefaultMaxPDUSize = 2 << 20

// Default returns the recommended default Options.
func Default() Options {
	return Options{
		MaxPDUSize:                 DefaultMaxPDUSize,
		AllowBinaryAttributeOption: true,
		StrictStringValidation:     false,
		TrimMatchedDN:              true,
	}
}
