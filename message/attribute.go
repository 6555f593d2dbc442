package message

import "github.com/oba-ldap/ldapcodec/ber"

// PartialAttribute is one (type, values) pair (RFC 4511 §4.1.7):
//
//	PartialAttribute ::= SEQUENCE {
//	    type AttributeDescription,
//	    vals SET OF value AttributeValue }
type PartialAttribute struct {
	Type       string
	Values     [][]byte
	bodyLength int
}

// ComputeLength computes and stores a's own SEQUENCE content length.
func (a *PartialAttribute) ComputeLength() int {
	valsBody := 0
	for _, v := range a.Values {
		valsBody += wireSize(len(v))
	}
	a.bodyLength = wireSize(len(a.Type)) + sequenceHeaderSize(valsBody) + valsBody
	return a.bodyLength
}

// EncodeBody appends a's SEQUENCE content to dst.
func (a *PartialAttribute) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(a.Type))
	valsBody := 0
	for _, v := range a.Values {
		valsBody += wireSize(len(v))
	}
	dst = appendSetHeader(dst, valsBody)
	for _, v := range a.Values {
		dst = appendOctetStringTLV(dst, v)
	}
	return dst
}

// attributeListLength computes every attribute's own length and returns the
// content length of the enclosing SEQUENCE OF PartialAttribute.
func attributeListLength(attrs []PartialAttribute) int {
	total := 0
	for i := range attrs {
		total += wireSize(attrs[i].ComputeLength())
	}
	return total
}

// appendAttributeList appends the SEQUENCE OF PartialAttribute TLV (header
// plus each attribute's SEQUENCE) to dst.
func appendAttributeList(dst []byte, attrs []PartialAttribute, bodyLen int) []byte {
	dst = appendSequenceHeader(dst, bodyLen)
	for i := range attrs {
		dst = appendSequenceHeader(dst, attrs[i].bodyLength)
		dst = attrs[i].EncodeBody(dst)
	}
	return dst
}

// decodePartialAttribute decodes one PartialAttribute SEQUENCE content.
func decodePartialAttribute(content []byte, strict bool) (PartialAttribute, error) {
	typ, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return PartialAttribute{}, err
	}
	rest := content[n:]

	setTLV, err := readTLV(rest)
	if err != nil {
		return PartialAttribute{}, err
	}
	if setTLV.tag.Class != ber.ClassUniversal || setTLV.tag.Number != ber.TagSet {
		return PartialAttribute{}, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagSet}, Actual: setTLV.tag}
	}

	var values [][]byte
	valBody := setTLV.content
	for len(valBody) > 0 {
		v, vn, err := readOctetStringBytes(valBody)
		if err != nil {
			return PartialAttribute{}, err
		}
		values = append(values, v)
		valBody = valBody[vn:]
	}
	return PartialAttribute{Type: typ, Values: values}, nil
}

// decodeAttributeList decodes a SEQUENCE OF PartialAttribute TLV starting
// at the beginning of b, returning the attributes and bytes consumed.
func decodeAttributeList(b []byte, strict bool) ([]PartialAttribute, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return nil, 0, err
	}
	if t.tag.Class != ber.ClassUniversal || t.tag.Number != ber.TagSequence {
		return nil, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagSequence}, Actual: t.tag}
	}
	var attrs []PartialAttribute
	rest := t.content
	for len(rest) > 0 {
		attrTLV, err := readTLV(rest)
		if err != nil {
			return nil, 0, err
		}
		a, err := decodePartialAttribute(attrTLV.content, strict)
		if err != nil {
			return nil, 0, err
		}
		attrs = append(attrs, a)
		rest = rest[attrTLV.consumed:]
	}
	return attrs, t.consumed, nil
}
