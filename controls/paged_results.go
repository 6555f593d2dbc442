package controls

import (
	"errors"

	"github.com/oba-ldap/ldapcodec/ber"
	"github.com/oba-ldap/ldapcodec/message"
)

// PagedResultsValue is the realSearchControlValue of the Simple Paged
// Results control (RFC 2696):
//
//	realSearchControlValue ::= SEQUENCE {
//	    size    INTEGER (0 .. maxInt),
//	    cookie  OCTET STRING }
type PagedResultsValue struct {
	Size   int32
	Cookie []byte
}

// EncodeValue implements message.ControlValue.
func (v PagedResultsValue) EncodeValue() ([]byte, error) {
	sizeContent := ber.AppendInteger(nil, int64(v.Size))
	sizeBody := 1 + ber.NumLengthBytes(len(sizeContent)) + len(sizeContent)
	cookieBody := 1 + ber.NumLengthBytes(len(v.Cookie)) + len(v.Cookie)
	body := sizeBody + cookieBody

	dst := make([]byte, 0, 1+ber.NumLengthBytes(body)+body)
	dst = append(dst, byte(ber.ClassUniversal|ber.Constructed|ber.TagSequence))
	dst = ber.AppendLength(dst, body)
	dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagInteger))
	dst = ber.AppendLength(dst, len(sizeContent))
	dst = append(dst, sizeContent...)
	dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagOctetString))
	dst = ber.AppendLength(dst, len(v.Cookie))
	dst = ber.AppendOctetString(dst, v.Cookie)
	return dst, nil
}

type pagedResultsCodec struct{}

func (pagedResultsCodec) Decode(value []byte) (message.ControlValue, error) {
	tag, err := ber.DecodeTag(value)
	if err != nil {
		return nil, err
	}
	if tag.Class != ber.ClassUniversal || tag.Number != ber.TagSequence || !tag.Constructed {
		return nil, errors.New("controls: pagedResults value is not a SEQUENCE")
	}
	seqLen, n, err := ber.DecodeLength(value[1:])
	if err != nil {
		return nil, err
	}
	body := value[1+n:]
	if seqLen > len(body) {
		return nil, ber.ErrTruncated
	}
	body = body[:seqLen]

	sizeTag, err := ber.DecodeTag(body)
	if err != nil {
		return nil, err
	}
	if sizeTag.Class != ber.ClassUniversal || sizeTag.Number != ber.TagInteger {
		return nil, errors.New("controls: pagedResults size is not an INTEGER")
	}
	sizeLen, sn, err := ber.DecodeLength(body[1:])
	if err != nil {
		return nil, err
	}
	rest := body[1+sn:]
	if sizeLen > len(rest) {
		return nil, ber.ErrTruncated
	}
	size, err := ber.DecodeInteger(rest[:sizeLen])
	if err != nil {
		return nil, err
	}
	rest = rest[sizeLen:]

	cookieTag, err := ber.DecodeTag(rest)
	if err != nil {
		return nil, err
	}
	if cookieTag.Class != ber.ClassUniversal || cookieTag.Number != ber.TagOctetString {
		return nil, errors.New("controls: pagedResults cookie is not an OCTET STRING")
	}
	cookieLen, cn, err := ber.DecodeLength(rest[1:])
	if err != nil {
		return nil, err
	}
	cookieContent := rest[1+cn:]
	if cookieLen > len(cookieContent) {
		return nil, ber.ErrTruncated
	}
	cookie := append([]byte(nil), cookieContent[:cookieLen]...)

	return PagedResultsValue{Size: int32(size), Cookie: cookie}, nil
}

// DontUseCopyValue is the (empty) value of the Don't Use Copy control
// (RFC 6171): a request that the server answer from the master
// copy rather than a replica. It carries no payload.
type DontUseCopyValue struct{}

// EncodeValue implements message.ControlValue.
func (DontUseCopyValue) EncodeValue() ([]byte, error) { return nil, nil }

type dontUseCopyCodec struct{}

func (dontUseCopyCodec) Decode(value []byte) (message.ControlValue, error) {
	return DontUseCopyValue{}, nil
}
