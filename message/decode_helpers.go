package message

import "github.com/oba-ldap/ldapcodec/ber"

// Shared low-level TLV readers used by every operation's DecodeXxx
// function below. Each reader takes a content slice already known to
// start at a tag octet and returns the decoded value plus the number of
// bytes it consumed, so callers can advance a cursor without re-deriving
// offsets.

type tlv struct {
	tag      ber.Tag
	content  []byte
	consumed int
}

// readTLV reads one full tag-length-value unit from the start of b.
func readTLV(b []byte) (tlv, error) {
	tag, err := ber.DecodeTag(b)
	if err != nil {
		return tlv{}, err
	}
	length, n, err := ber.DecodeLength(b[1:])
	if err != nil {
		return tlv{}, err
	}
	start := 1 + n
	if length > len(b)-start {
		return tlv{}, ber.ErrTruncated
	}
	return tlv{tag: tag, content: b[start : start+length], consumed: start + length}, nil
}

func readOctetStringValue(b []byte, strict bool) (string, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return "", 0, err
	}
	if t.tag.Class != ber.ClassUniversal || t.tag.Number != ber.TagOctetString {
		return "", 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagOctetString}, Actual: t.tag}
	}
	s, err := ber.DecodeUTF8(t.content, strict)
	if err != nil {
		return "", 0, err
	}
	return s, t.consumed, nil
}

func readOctetStringBytes(b []byte) ([]byte, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return nil, 0, err
	}
	if t.tag.Class != ber.ClassUniversal || t.tag.Number != ber.TagOctetString {
		return nil, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagOctetString}, Actual: t.tag}
	}
	return append([]byte(nil), t.content...), t.consumed, nil
}

func readInteger(b []byte) (int64, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return 0, 0, err
	}
	if t.tag.Class != ber.ClassUniversal || t.tag.Number != ber.TagInteger {
		return 0, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagInteger}, Actual: t.tag}
	}
	v, err := ber.DecodeInteger(t.content)
	return v, t.consumed, err
}

func readEnumerated(b []byte) (int64, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return 0, 0, err
	}
	if t.tag.Class != ber.ClassUniversal || t.tag.Number != ber.TagEnumerated {
		return 0, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagEnumerated}, Actual: t.tag}
	}
	v, err := ber.DecodeInteger(t.content)
	return v, t.consumed, err
}

func readBoolean(b []byte) (bool, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return false, 0, err
	}
	if t.tag.Class != ber.ClassUniversal || t.tag.Number != ber.TagBoolean {
		return false, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagBoolean}, Actual: t.tag}
	}
	v, err := ber.DecodeBoolean(t.content)
	return v, t.consumed, err
}

// peekTag reads just the identifier octet of the next TLV without
// consuming it, so callers can branch on an OPTIONAL field's presence.
func peekTag(b []byte) (ber.Tag, error) {
	return ber.DecodeTag(b)
}
