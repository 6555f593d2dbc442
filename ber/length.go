package ber

// NumLengthBytes returns the number of octets the length header for a
// content of n bytes occupies on the wire: 1 for the short form (n < 128),
// otherwise 1 (the 0x80|k introducer) plus k big-endian length octets.
func NumLengthBytes(n int) int {
	switch {
	case n < 128:
		return 1
	case n < 1<<8:
		return 2
	case n < 1<<16:
		return 3
	case n < 1<<24:
		return 4
	default:
		return 5
	}
}

// AppendLength appends the BER length encoding of n to dst.
func AppendLength(dst []byte, n int) []byte {
	if n < 0 {
		panic("ber: negative length")
	}
	if n < 128 {
		return append(dst, byte(n))
	}
	k := NumLengthBytes(n) - 1
	dst = append(dst, 0x80|byte(k))
	for i := k - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(uint(i)*8)))
	}
	return dst
}

// DecodeLength decodes a BER length header from the start of b, returning
// the content length and the number of octets the header occupied. This
// codec caps the long form at four subsequent octets (covers any length up
// to 4 GiB, far beyond config.Options.MaxPDUSize), and rejects the
// indefinite form (0x80) outright — LDAP never emits it.
func DecodeLength(b []byte) (length int, consumed int, err error) {
	if len(b) < 1 {
		return 0, 0, ErrTruncated
	}
	first := b[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}
	k := int(first & 0x7F)
	if k == 0 {
		return 0, 0, ErrIndefiniteLength
	}
	if k > 4 {
		return 0, 0, ErrLengthOutOfRange
	}
	if len(b) < 1+k {
		return 0, 0, ErrTruncated
	}
	n := 0
	for i := 0; i < k; i++ {
		n = n<<8 | int(b[1+i])
	}
	return n, 1 + k, nil
}
