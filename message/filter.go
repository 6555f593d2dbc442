package message

import "github.com/oba-ldap/ldapcodec/ber"

// Filter context tags, RFC 4511 §4.5.1.7.
const (
	FilterAnd             = 0
	FilterOr              = 1
	FilterNot             = 2
	FilterEquality        = 3
	FilterSubstrings      = 4
	FilterGreaterOrEqual  = 5
	FilterLessOrEqual     = 6
	FilterPresent         = 7
	FilterApproxMatch     = 8
	FilterExtensibleMatch = 9
)

// Substring filter component tags.
const (
	SubstringInitial = 0
	SubstringAny     = 1
	SubstringFinal   = 2
)

// ExtensibleMatch component tags.
const (
	ExtMatchMatchingRule = 1
	ExtMatchType         = 2
	ExtMatchMatchValue   = 3
	ExtMatchDNAttributes = 4
)

// Filter is the search filter tree (RFC 4511 §4.5.1): a tagged union
// discriminated by Kind. A node exclusively owns its children.
type Filter struct {
	Kind int

	// And, Or: Children holds the SET OF sub-filters.
	// Not: Child holds the single negated sub-filter.
	Children []*Filter
	Child    *Filter

	// Equality, GreaterOrEqual, LessOrEqual, ApproxMatch: attribute-value
	// assertion. Present: only Attribute is used. Substrings: Attribute
	// names the type being matched.
	Attribute string
	Value     []byte

	Initial    []byte
	HasInitial bool
	Any        [][]byte
	Final      []byte
	HasFinal   bool

	MatchingRule string
	Type         string
	MatchValue   []byte
	DNAttributes bool

	bodyLength int
}

// NewAndFilter returns an And node over children.
func NewAndFilter(children ...*Filter) *Filter { return &Filter{Kind: FilterAnd, Children: children} }

// NewOrFilter returns an Or node over children.
func NewOrFilter(children ...*Filter) *Filter { return &Filter{Kind: FilterOr, Children: children} }

// NewNotFilter returns a Not node negating child.
func NewNotFilter(child *Filter) *Filter { return &Filter{Kind: FilterNot, Child: child} }

// NewEqualityFilter returns an equalityMatch node.
func NewEqualityFilter(attr string, value []byte) *Filter {
	return &Filter{Kind: FilterEquality, Attribute: attr, Value: value}
}

// NewGreaterOrEqualFilter returns a greaterOrEqual node.
func NewGreaterOrEqualFilter(attr string, value []byte) *Filter {
	return &Filter{Kind: FilterGreaterOrEqual, Attribute: attr, Value: value}
}

// NewLessOrEqualFilter returns a lessOrEqual node.
func NewLessOrEqualFilter(attr string, value []byte) *Filter {
	return &Filter{Kind: FilterLessOrEqual, Attribute: attr, Value: value}
}

// NewApproxMatchFilter returns an approxMatch node.
func NewApproxMatchFilter(attr string, value []byte) *Filter {
	return &Filter{Kind: FilterApproxMatch, Attribute: attr, Value: value}
}

// NewPresentFilter returns a present node.
func NewPresentFilter(attr string) *Filter {
	return &Filter{Kind: FilterPresent, Attribute: attr}
}

// NewSubstringsFilter returns a substrings node. initial and final may be
// nil to omit that component; any may be empty.
func NewSubstringsFilter(attr string, initial []byte, any [][]byte, final []byte) *Filter {
	return &Filter{
		Kind:       FilterSubstrings,
		Attribute:  attr,
		Initial:    initial,
		HasInitial: initial != nil,
		Any:        any,
		Final:      final,
		HasFinal:   final != nil,
	}
}

// NewExtensibleMatchFilter returns an extensibleMatch node. matchingRule and
// attrType may be empty to omit that component.
func NewExtensibleMatchFilter(matchingRule, attrType string, matchValue []byte, dnAttributes bool) *Filter {
	return &Filter{
		Kind:         FilterExtensibleMatch,
		MatchingRule: matchingRule,
		Type:         attrType,
		MatchValue:   matchValue,
		DNAttributes: dnAttributes,
	}
}

// WireSize returns the full TLV size (tag + length header + body) of f,
// assuming ComputeLength has already been called.
func (f *Filter) WireSize() int {
	return 1 + ber.NumLengthBytes(f.bodyLength) + f.bodyLength
}

// filterConstructed reports whether f's own context tag is constructed.
func filterConstructed(kind int) bool {
	switch kind {
	case FilterPresent:
		return false
	default:
		return true
	}
}

// ComputeLength computes and stores f's own content length (post-order over
// the whole tree) and returns it.
func (f *Filter) ComputeLength() int {
	var n int
	switch f.Kind {
	case FilterAnd, FilterOr:
		for _, c := range f.Children {
			c.ComputeLength()
			n += c.WireSize()
		}
	case FilterNot:
		f.Child.ComputeLength()
		n = f.Child.WireSize()
	case FilterEquality, FilterGreaterOrEqual, FilterLessOrEqual, FilterApproxMatch:
		n = wireSize(len(f.Attribute)) + wireSize(len(f.Value))
	case FilterPresent:
		n = len(f.Attribute)
	case FilterSubstrings:
		inner := wireSize(len(f.Attribute))
		subBody := 0
		if f.HasInitial {
			subBody += wireSize(len(f.Initial))
		}
		for _, a := range f.Any {
			subBody += wireSize(len(a))
		}
		if f.HasFinal {
			subBody += wireSize(len(f.Final))
		}
		inner += 1 + ber.NumLengthBytes(subBody) + subBody
		n = inner
	case FilterExtensibleMatch:
		if f.MatchingRule != "" {
			n += wireSize(len(f.MatchingRule))
		}
		if f.Type != "" {
			n += wireSize(len(f.Type))
		}
		n += wireSize(len(f.MatchValue))
		if f.DNAttributes {
			n += wireSize(1)
		}
	}
	f.bodyLength = n
	return n
}

// EncodeTLV appends f's full TLV (tag, length, body) to dst.
func (f *Filter) EncodeTLV(dst []byte) []byte {
	c := byte(0)
	if filterConstructed(f.Kind) {
		c = ber.Constructed
	}
	dst = append(dst, byte(ber.ClassContextSpecific)|c|byte(f.Kind))
	dst = ber.AppendLength(dst, f.bodyLength)
	return f.EncodeBody(dst)
}

// EncodeBody appends f's content (no tag/length) to dst.
func (f *Filter) EncodeBody(dst []byte) []byte {
	switch f.Kind {
	case FilterAnd, FilterOr:
		for _, c := range f.Children {
			dst = c.EncodeTLV(dst)
		}
	case FilterNot:
		dst = f.Child.EncodeTLV(dst)
	case FilterEquality, FilterGreaterOrEqual, FilterLessOrEqual, FilterApproxMatch:
		dst = appendOctetStringTLV(dst, []byte(f.Attribute))
		dst = appendOctetStringTLV(dst, f.Value)
	case FilterPresent:
		dst = ber.AppendOctetString(dst, []byte(f.Attribute))
	case FilterSubstrings:
		dst = appendOctetStringTLV(dst, []byte(f.Attribute))
		subBody := 0
		if f.HasInitial {
			subBody += wireSize(len(f.Initial))
		}
		for _, a := range f.Any {
			subBody += wireSize(len(a))
		}
		if f.HasFinal {
			subBody += wireSize(len(f.Final))
		}
		dst = append(dst, byte(ber.ClassUniversal|ber.Constructed|ber.TagSequence))
		dst = ber.AppendLength(dst, subBody)
		if f.HasInitial {
			dst = appendContextOctetStringTLV(dst, SubstringInitial, f.Initial)
		}
		for _, a := range f.Any {
			dst = appendContextOctetStringTLV(dst, SubstringAny, a)
		}
		if f.HasFinal {
			dst = appendContextOctetStringTLV(dst, SubstringFinal, f.Final)
		}
	case FilterExtensibleMatch:
		if f.MatchingRule != "" {
			dst = appendContextOctetStringTLV(dst, ExtMatchMatchingRule, []byte(f.MatchingRule))
		}
		if f.Type != "" {
			dst = appendContextOctetStringTLV(dst, ExtMatchType, []byte(f.Type))
		}
		dst = appendContextOctetStringTLV(dst, ExtMatchMatchValue, f.MatchValue)
		if f.DNAttributes {
			dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ExtMatchDNAttributes))
			dst = ber.AppendLength(dst, 1)
			dst = ber.AppendBoolean(dst, true)
		}
	}
	return dst
}

func appendContextOctetStringTLV(dst []byte, tag int, v []byte) []byte {
	dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|tag))
	dst = ber.AppendLength(dst, len(v))
	return ber.AppendOctetString(dst, v)
}

// decodeFilter reads one complete Filter TLV from the start of b, returning
// the parsed tree and the number of bytes consumed.
func decodeFilter(b []byte, strict bool) (*Filter, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return nil, 0, err
	}
	if t.tag.Class != ber.ClassContextSpecific {
		return nil, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassContextSpecific}, Actual: t.tag}
	}
	f := &Filter{Kind: t.tag.Number}
	body := t.content

	switch f.Kind {
	case FilterAnd, FilterOr:
		for len(body) > 0 {
			child, cn, err := decodeFilter(body, strict)
			if err != nil {
				return nil, 0, err
			}
			f.Children = append(f.Children, child)
			body = body[cn:]
		}
	case FilterNot:
		child, _, err := decodeFilter(body, strict)
		if err != nil {
			return nil, 0, err
		}
		f.Child = child
	case FilterEquality, FilterGreaterOrEqual, FilterLessOrEqual, FilterApproxMatch:
		attr, n, err := readOctetStringValue(body, strict)
		if err != nil {
			return nil, 0, err
		}
		value, _, err := readOctetStringBytes(body[n:])
		if err != nil {
			return nil, 0, err
		}
		f.Attribute = attr
		f.Value = value
	case FilterPresent:
		attr, err := ber.DecodeUTF8(body, strict)
		if err != nil {
			return nil, 0, err
		}
		f.Attribute = attr
	case FilterSubstrings:
		attr, n, err := readOctetStringValue(body, strict)
		if err != nil {
			return nil, 0, err
		}
		f.Attribute = attr
		subsTLV, err := readTLV(body[n:])
		if err != nil {
			return nil, 0, err
		}
		if subsTLV.tag.Class != ber.ClassUniversal || subsTLV.tag.Number != ber.TagSequence {
			return nil, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagSequence}, Actual: subsTLV.tag}
		}
		sub := subsTLV.content
		for len(sub) > 0 {
			st, err := readTLV(sub)
			if err != nil {
				return nil, 0, err
			}
			if st.tag.Class != ber.ClassContextSpecific {
				return nil, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassContextSpecific}, Actual: st.tag}
			}
			switch st.tag.Number {
			case SubstringInitial:
				f.Initial, f.HasInitial = append([]byte(nil), st.content...), true
			case SubstringAny:
				f.Any = append(f.Any, append([]byte(nil), st.content...))
			case SubstringFinal:
				f.Final, f.HasFinal = append([]byte(nil), st.content...), true
			default:
				return nil, 0, &ber.TagMismatchError{Actual: st.tag}
			}
			sub = sub[st.consumed:]
		}
	case FilterExtensibleMatch:
		for len(body) > 0 {
			ct, err := readTLV(body)
			if err != nil {
				return nil, 0, err
			}
			if ct.tag.Class != ber.ClassContextSpecific {
				return nil, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassContextSpecific}, Actual: ct.tag}
			}
			switch ct.tag.Number {
			case ExtMatchMatchingRule:
				rule, err := ber.DecodeUTF8(ct.content, strict)
				if err != nil {
					return nil, 0, err
				}
				f.MatchingRule = rule
			case ExtMatchType:
				typ, err := ber.DecodeUTF8(ct.content, strict)
				if err != nil {
					return nil, 0, err
				}
				f.Type = typ
			case ExtMatchMatchValue:
				f.MatchValue = append([]byte(nil), ct.content...)
			case ExtMatchDNAttributes:
				v, err := ber.DecodeBoolean(ct.content)
				if err != nil {
					return nil, 0, err
				}
				f.DNAttributes = v
			default:
				return nil, 0, &ber.TagMismatchError{Actual: ct.tag}
			}
			body = body[ct.consumed:]
		}
	default:
		return nil, 0, &ber.TagMismatchError{Actual: t.tag}
	}
	return f, t.consumed, nil
}
