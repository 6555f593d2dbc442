package message

import "github.com/oba-ldap/ldapcodec/ber"

// Shared TLV-sizing and TLV-appending helpers used by every operation's
// ComputeLength/EncodeBody pair below. Kept in one file since every op
// reaches for the same handful of universal-type encodings.

func intWireSize(v int64) int {
	return wireSize(len(ber.AppendInteger(nil, v)))
}

func appendIntegerTLV(dst []byte, v int64) []byte {
	dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagInteger))
	content := ber.AppendInteger(nil, v)
	dst = ber.AppendLength(dst, len(content))
	return append(dst, content...)
}

func appendBooleanTLV(dst []byte, v bool) []byte {
	dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagBoolean))
	dst = ber.AppendLength(dst, 1)
	return ber.AppendBoolean(dst, v)
}

func sequenceHeaderSize(bodyLen int) int {
	return 1 + ber.NumLengthBytes(bodyLen)
}

func appendSequenceHeader(dst []byte, bodyLen int) []byte {
	dst = append(dst, byte(ber.ClassUniversal|ber.Constructed|ber.TagSequence))
	return ber.AppendLength(dst, bodyLen)
}

func appendSetHeader(dst []byte, bodyLen int) []byte {
	dst = append(dst, byte(ber.ClassUniversal|ber.Constructed|ber.TagSet))
	return ber.AppendLength(dst, bodyLen)
}

func appendContextTag(dst []byte, tag int, constructed bool, bodyLen int) []byte {
	c := byte(0)
	if constructed {
		c = ber.Constructed
	}
	dst = append(dst, byte(ber.ClassContextSpecific)|c|byte(tag))
	return ber.AppendLength(dst, bodyLen)
}
