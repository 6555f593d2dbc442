package ber

import (
	"bytes"
	"testing"
)

func TestIntegerRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 127, 128, -128, -129, 255, 256, 2147483647, -2147483648}
	for _, v := range tests {
		content := AppendInteger(nil, v)
		got, err := DecodeInteger(content)
		if err != nil {
			t.Fatalf("DecodeInteger(%x) for v=%d: %v", content, v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %x -> %d", v, content, got)
		}
	}
}

func TestAppendIntegerMinimalEncoding(t *testing.T) {
	tests := []struct {
		v    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x00, 0x80}},
		{-1, []byte{0xFF}},
		{-128, []byte{0x80}},
		{-129, []byte{0xFF, 0x7F}},
	}
	for _, tt := range tests {
		got := AppendInteger(nil, tt.v)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("AppendInteger(%d) = %x, want %x", tt.v, got, tt.want)
		}
	}
}

func TestDecodeIntegerErrors(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		if _, err := DecodeInteger(nil); err == nil {
			t.Error("expected error for empty content")
		}
	})
	t.Run("oversized content", func(t *testing.T) {
		_, err := DecodeInteger([]byte{1, 2, 3, 4, 5})
		if err != ErrIntegerOutOfRange {
			t.Errorf("expected ErrIntegerOutOfRange, got %v", err)
		}
	})
}
