package ber

import (
	"bytes"
	"testing"
)

func TestNumLengthBytes(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 1},
		{"short form boundary", 127, 1},
		{"long form one octet", 128, 2},
		{"long form two octets", 256, 3},
		{"long form three octets", 1 << 16, 4},
		{"long form four octets", 1 << 24, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumLengthBytes(tt.n); got != tt.want {
				t.Errorf("NumLengthBytes(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestAppendLength(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []byte
	}{
		{"short form", 5, []byte{0x05}},
		{"short form boundary", 127, []byte{0x7F}},
		{"long form one octet", 128, []byte{0x81, 0x80}},
		{"long form two octets", 300, []byte{0x82, 0x01, 0x2C}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendLength(nil, tt.n)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("AppendLength(%d) = %x, want %x", tt.n, got, tt.want)
			}
		})
	}
}

func TestDecodeLength(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, n := range []int{0, 1, 127, 128, 255, 256, 65535, 65536} {
			encoded := AppendLength(nil, n)
			got, consumed, err := DecodeLength(encoded)
			if err != nil {
				t.Fatalf("DecodeLength(%x): %v", encoded, err)
			}
			if got != n || consumed != len(encoded) {
				t.Errorf("DecodeLength(%x) = (%d, %d), want (%d, %d)", encoded, got, consumed, n, len(encoded))
			}
		}
	})

	t.Run("truncated header", func(t *testing.T) {
		_, _, err := DecodeLength(nil)
		if err != ErrTruncated {
			t.Errorf("expected ErrTruncated, got %v", err)
		}
	})

	t.Run("truncated long form octets", func(t *testing.T) {
		_, _, err := DecodeLength([]byte{0x82, 0x01})
		if err != ErrTruncated {
			t.Errorf("expected ErrTruncated, got %v", err)
		}
	})

	t.Run("indefinite length rejected", func(t *testing.T) {
		_, _, err := DecodeLength([]byte{0x80})
		if err != ErrIndefiniteLength {
			t.Errorf("expected ErrIndefiniteLength, got %v", err)
		}
	})

	t.Run("length out of range", func(t *testing.T) {
		_, _, err := DecodeLength([]byte{0x85, 1, 2, 3, 4, 5})
		if err != ErrLengthOutOfRange {
			t.Errorf("expected ErrLengthOutOfRange, got %v", err)
		}
	})
}
