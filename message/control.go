package message

import "github.com/oba-ldap/ldapcodec/ber"

// Control is an LDAP control (RFC 4511 §4.1.11):
//
//	Control ::= SEQUENCE {
//	    controlType  LDAPOID,
//	    criticality  BOOLEAN DEFAULT FALSE,
//	    controlValue OCTET STRING OPTIONAL }
//
// Decoded holds a structured payload for OIDs the controls registry knows
// how to parse; Value always holds the raw bytes so an unknown-OID control
// round-trips unchanged even when Decoded is nil.
type Control struct {
	OID      string
	Critical bool
	Value    []byte
	HasValue bool
	Decoded  ControlValue

	// bodyLength is the content length of this Control's own SEQUENCE,
	// set by ComputeLength.
	bodyLength int
}

// ControlValue is the polymorphic capability a registered control codec
// attaches to a Control so its parsed payload can be re-encoded.
type ControlValue interface {
	EncodeValue() ([]byte, error)
}

// NewControl builds a Control with an opaque value.
func NewControl(oid string, critical bool, value []byte) *Control {
	return &Control{OID: oid, Critical: critical, Value: value, HasValue: value != nil}
}

// ComputeLength computes and stores c's own SEQUENCE content length and
// returns it.
func (c *Control) ComputeLength() int {
	n := wireSize(len(c.OID))
	if c.Critical {
		n += wireSize(1)
	}
	if c.HasValue {
		n += wireSize(len(c.Value))
	}
	c.bodyLength = n
	return n
}

// EncodeBody appends c's SEQUENCE content (controlType, optional
// criticality, optional controlValue) to dst.
func (c *Control) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(c.OID))
	if c.Critical {
		dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagBoolean))
		dst = ber.AppendLength(dst, 1)
		dst = ber.AppendBoolean(dst, true)
	}
	if c.HasValue {
		dst = appendOctetStringTLV(dst, c.Value)
	}
	return dst
}

// wireSize returns 1 (tag) + length-header + bodyLen.
func wireSize(bodyLen int) int {
	return 1 + ber.NumLengthBytes(bodyLen) + bodyLen
}

func appendOctetStringTLV(dst []byte, v []byte) []byte {
	dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagOctetString))
	dst = ber.AppendLength(dst, len(v))
	return ber.AppendOctetString(dst, v)
}

// ControlList is an insertion-ordered collection of Controls, keyed by OID.
// Encoding iterates in insertion order (determinism requirement I5's
// sibling: controls ordering is preserved by insertion, not sorted).
type ControlList struct {
	items []*Control
	index map[string]int
}

// NewControlList returns an empty ControlList.
func NewControlList() *ControlList {
	return &ControlList{index: make(map[string]int)}
}

// Add appends c, returning ErrDuplicateControl if its OID is already
// present (a protocol error during decode per spec §3's ownership rules).
func (cl *ControlList) Add(c *Control) error {
	if _, exists := cl.index[c.OID]; exists {
		return ErrDuplicateControl
	}
	cl.index[c.OID] = len(cl.items)
	cl.items = append(cl.items, c)
	return nil
}

// All returns the controls in insertion order. The caller must not mutate
// the returned slice.
func (cl *ControlList) All() []*Control {
	if cl == nil {
		return nil
	}
	return cl.items
}

// Get returns the control registered under oid, if any.
func (cl *ControlList) Get(oid string) (*Control, bool) {
	if cl == nil {
		return nil, false
	}
	i, ok := cl.index[oid]
	if !ok {
		return nil, false
	}
	return cl.items[i], true
}

// Len returns the number of controls.
func (cl *ControlList) Len() int {
	if cl == nil {
		return 0
	}
	return len(cl.items)
}

// ComputeLength computes each control's length and returns the total
// content length of the Controls SEQUENCE OF (not including the [0]
// header that wraps it in the Message envelope).
func (cl *ControlList) ComputeLength() int {
	if cl == nil {
		return 0
	}
	total := 0
	for _, c := range cl.items {
		total += wireSize(c.ComputeLength())
	}
	return total
}

// EncodeBody appends each control's SEQUENCE TLV, in insertion order, to
// dst.
func (cl *ControlList) EncodeBody(dst []byte) []byte {
	if cl == nil {
		return dst
	}
	for _, c := range cl.items {
		dst = append(dst, byte(ber.ClassUniversal|ber.Constructed|ber.TagSequence))
		dst = ber.AppendLength(dst, c.bodyLength)
		dst = c.EncodeBody(dst)
	}
	return dst
}

// decodeControl decodes one Control SEQUENCE content.
func decodeControl(content []byte, strict bool) (*Control, error) {
	oid, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return nil, err
	}
	rest := content[n:]

	c := &Control{OID: oid}
	if len(rest) > 0 {
		tag, err := peekTag(rest)
		if err != nil {
			return nil, err
		}
		if tag.Class == ber.ClassUniversal && tag.Number == ber.TagBoolean {
			v, bn, err := readBoolean(rest)
			if err != nil {
				return nil, err
			}
			c.Critical = v
			rest = rest[bn:]
		}
	}
	if len(rest) > 0 {
		v, _, err := readOctetStringBytes(rest)
		if err != nil {
			return nil, err
		}
		c.Value = v
		c.HasValue = true
	}
	return c, nil
}

// DecodeControlList decodes the Controls SEQUENCE OF content (the bytes
// already stripped of the enclosing [0] tag and length) into a
// ControlList. Exported for package decode's use at the LDAPMessage
// envelope level.
func DecodeControlList(content []byte, strict bool) (*ControlList, error) {
	return decodeControlList(content, strict)
}

// decodeControlList decodes the Controls SEQUENCE OF content (the bytes
// already stripped of the enclosing [0] tag and length) into a
// ControlList.
func decodeControlList(content []byte, strict bool) (*ControlList, error) {
	cl := NewControlList()
	rest := content
	for len(rest) > 0 {
		t, err := readTLV(rest)
		if err != nil {
			return nil, err
		}
		if t.tag.Class != ber.ClassUniversal || t.tag.Number != ber.TagSequence {
			return nil, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagSequence}, Actual: t.tag}
		}
		c, err := decodeControl(t.content, strict)
		if err != nil {
			return nil, err
		}
		if err := cl.Add(c); err != nil {
			return nil, err
		}
		rest = rest[t.consumed:]
	}
	return cl, nil
}
