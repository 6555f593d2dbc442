package ber

// AppendInteger appends the minimal two's-complement big-endian encoding
// of v (no redundant leading 0x00/0xFF octet).
func AppendInteger(dst []byte, v int64) []byte {
	return append(dst, encodeTwosComplement(v)...)
}

// encodeTwosComplement returns the minimal two's-complement representation
// of v, used identically for INTEGER and ENUMERATED content.
func encodeTwosComplement(v int64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var out []byte
	uv := uint64(v)
	if v < 0 {
		for i := 7; i >= 0; i-- {
			b := byte(uv >> (uint(i) * 8))
			signBitOfNext := i > 0 && (uv>>(uint(i-1)*8))&0x80 == 0
			if len(out) > 0 || b != 0xFF || signBitOfNext {
				out = append(out, b)
			}
		}
		if len(out) == 0 {
			out = []byte{0xFF}
		}
		if out[0]&0x80 == 0 {
			out = append([]byte{0xFF}, out...)
		}
		return out
	}
	for i := 7; i >= 0; i-- {
		b := byte(uv >> (uint(i) * 8))
		if len(out) > 0 || b != 0 {
			out = append(out, b)
		}
	}
	if len(out) > 0 && out[0]&0x80 != 0 {
		out = append([]byte{0x00}, out...)
	}
	return out
}

// DecodeInteger decodes minimal two's-complement content bytes into an
// int64. A zero-length content is a decode error; content longer than four
// octets exceeds the signed 32-bit range used throughout the grammar and is
// rejected with ErrIntegerOutOfRange.
func DecodeInteger(content []byte) (int64, error) {
	if len(content) == 0 {
		return 0, ErrTruncated
	}
	if len(content) > 4 {
		return 0, ErrIntegerOutOfRange
	}
	v := int64(content[0])
	if v&0x80 != 0 {
		v -= 256
	}
	for _, b := range content[1:] {
		v = v<<8 | int64(b)
	}
	return v, nil
}

// AppendEnumerated appends the ENUMERATED content octets for v; the wire
// encoding of ENUMERATED is identical to INTEGER (RFC 4511 uses a distinct
// tag number only).
func AppendEnumerated(dst []byte, v int64) []byte {
	return AppendInteger(dst, v)
}

// DecodeEnumerated decodes ENUMERATED content, identical to DecodeInteger.
func DecodeEnumerated(content []byte) (int64, error) {
	return DecodeInteger(content)
}
