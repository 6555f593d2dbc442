package decode

import (
	"bytes"
	"testing"

	"github.com/oba-ldap/ldapcodec/config"
	"github.com/oba-ldap/ldapcodec/encode"
	"github.com/oba-ldap/ldapcodec/message"
)

func TestDecodeMessage(t *testing.T) {
	cfg := config.Default()

	t.Run("BindRequest v3 simple anonymous", func(t *testing.T) {
		input := []byte{0x30, 0x0c, 0x02, 0x01, 0x01, 0x60, 0x07, 0x02, 0x01, 0x03, 0x04, 0x00, 0x80, 0x00}
		m, n, err := DecodeMessage(input, cfg)
		if err != nil {
			t.Fatalf("DecodeMessage: %v", err)
		}
		if n != len(input) {
			t.Fatalf("consumed %d, want %d", n, len(input))
		}
		if m.ID != 1 {
			t.Errorf("ID = %d, want 1", m.ID)
		}
		req, ok := m.Op.(*message.BindRequest)
		if !ok {
			t.Fatalf("Op is %T, want *message.BindRequest", m.Op)
		}
		if req.Version != 3 || req.Name != "" || !req.IsAnonymous() {
			t.Errorf("unexpected BindRequest: %+v", req)
		}

		reencoded, err := encode.Encode(m, cfg)
		if err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		if !bytes.Equal(reencoded, input) {
			t.Errorf("re-encode mismatch:\n got  %x\n want %x", reencoded, input)
		}
	})

	t.Run("BindResponse success", func(t *testing.T) {
		input := []byte{0x30, 0x0c, 0x02, 0x01, 0x01, 0x61, 0x07, 0x0a, 0x01, 0x00, 0x04, 0x00, 0x04, 0x00}
		m, n, err := DecodeMessage(input, cfg)
		if err != nil {
			t.Fatalf("DecodeMessage: %v", err)
		}
		if n != len(input) {
			t.Fatalf("consumed %d, want %d", n, len(input))
		}
		resp, ok := m.Op.(*message.BindResponse)
		if !ok {
			t.Fatalf("Op is %T, want *message.BindResponse", m.Op)
		}
		if resp.Result.ResultCode != message.ResultSuccess {
			t.Errorf("ResultCode = %v, want success", resp.Result.ResultCode)
		}
	})

	t.Run("SearchRequest base-object equality filter", func(t *testing.T) {
		input := []byte{
			0x30, 0x2c, 0x02, 0x01, 0x02, 0x63, 0x27,
			0x04, 0x00,
			0x0a, 0x01, 0x00,
			0x0a, 0x01, 0x00,
			0x02, 0x01, 0x00,
			0x02, 0x01, 0x00,
			0x01, 0x01, 0x00,
			0xa0, 0x14,
			0xa3, 0x12,
			0x04, 0x0b, 'o', 'b', 'j', 'e', 'c', 't', 'C', 'l', 'a', 's', 's',
			0x04, 0x03, 't', 'o', 'p',
			0x30, 0x00,
		}
		m, _, err := DecodeMessage(input, cfg)
		if err != nil {
			t.Fatalf("DecodeMessage: %v", err)
		}
		req, ok := m.Op.(*message.SearchRequest)
		if !ok {
			t.Fatalf("Op is %T, want *message.SearchRequest", m.Op)
		}
		if req.Scope != message.ScopeBaseObject || req.DerefAliases != message.DerefNever {
			t.Errorf("unexpected scope/deref: %+v", req)
		}
		if req.Filter.Kind != message.FilterAnd || len(req.Filter.Children) != 1 {
			t.Fatalf("unexpected filter shape: %+v", req.Filter)
		}
		eq := req.Filter.Children[0]
		if eq.Kind != message.FilterEquality || eq.Attribute != "objectClass" || string(eq.Value) != "top" {
			t.Errorf("unexpected equality filter: %+v", eq)
		}

		reencoded, err := encode.Encode(m, cfg)
		if err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		if !bytes.Equal(reencoded, input) {
			t.Errorf("re-encode mismatch:\n got  %x\n want %x", reencoded, input)
		}
	})

	t.Run("UnbindRequest", func(t *testing.T) {
		input := []byte{0x30, 0x05, 0x02, 0x01, 0x03, 0x42, 0x00}
		m, n, err := DecodeMessage(input, cfg)
		if err != nil {
			t.Fatalf("DecodeMessage: %v", err)
		}
		if n != len(input) {
			t.Fatalf("consumed %d, want %d", n, len(input))
		}
		if _, ok := m.Op.(message.UnbindRequest); !ok {
			t.Fatalf("Op is %T, want message.UnbindRequest", m.Op)
		}
	})

	t.Run("truncated input needs more data", func(t *testing.T) {
		input := []byte{0x30, 0x0c, 0x02, 0x01, 0x01, 0x60, 0x07, 0x02, 0x01, 0x03}
		_, _, err := DecodeMessage(input, cfg)
		if err != ErrNeedMoreData {
			t.Errorf("got %v, want ErrNeedMoreData", err)
		}
	})

	t.Run("max PDU size exceeded", func(t *testing.T) {
		small := cfg
		small.MaxPDUSize = 4
		input := []byte{0x30, 0x0c, 0x02, 0x01, 0x01, 0x60, 0x07, 0x02, 0x01, 0x03, 0x04, 0x00, 0x80, 0x00}
		_, _, err := DecodeMessage(input, small)
		if err == nil {
			t.Fatal("expected ErrMaxPDUExceeded")
		}
	})

	t.Run("malformed PDU: inner TLV exceeds outer SEQUENCE bound", func(t *testing.T) {
		// Outer SEQUENCE declares 10 content bytes (fully present). The
		// messageID TLV takes 3 of them; the protocolOp TLV then claims a
		// 7-byte body but only 5 bytes remain inside the already-complete
		// outer bound. This must fail fatally, not wait for more bytes:
		// the 2 missing bytes are never coming.
		input := []byte{
			0x30, 0x0a,
			0x02, 0x01, 0x01,
			0x60, 0x07, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
		}
		_, _, err := DecodeMessage(input, cfg)
		if err == nil {
			t.Fatal("expected a fatal TruncatedContainer error")
		}
		if err == ErrNeedMoreData {
			t.Fatal("got ErrNeedMoreData for a fully-buffered malformed PDU; must be fatal")
		}
	})
}

func TestContainerFragmentTolerance(t *testing.T) {
	input := []byte{0x30, 0x0c, 0x02, 0x01, 0x01, 0x60, 0x07, 0x02, 0x01, 0x03, 0x04, 0x00, 0x80, 0x00}
	c := NewContainer(config.Default())

	for i := 0; i < len(input); i++ {
		c.Feed(input[i : i+1])
		m, ok, err := c.NextMessage()
		if err != nil {
			t.Fatalf("NextMessage: %v", err)
		}
		if i < len(input)-1 {
			if ok {
				t.Fatalf("got a complete message after only %d of %d bytes", i+1, len(input))
			}
			continue
		}
		if !ok {
			t.Fatal("expected a complete message after the final byte")
		}
		if m.ID != 1 {
			t.Errorf("ID = %d, want 1", m.ID)
		}
	}
}

func TestContainerMultipleMessages(t *testing.T) {
	unbind := []byte{0x30, 0x05, 0x02, 0x01, 0x01, 0x42, 0x00}
	bind := []byte{0x30, 0x0c, 0x02, 0x01, 0x02, 0x60, 0x07, 0x02, 0x01, 0x03, 0x04, 0x00, 0x80, 0x00}

	c := NewContainer(config.Default())
	c.Feed(unbind)
	c.Feed(bind)

	first, ok, err := c.NextMessage()
	if err != nil || !ok {
		t.Fatalf("first NextMessage: ok=%v err=%v", ok, err)
	}
	if first.ID != 1 {
		t.Errorf("first.ID = %d, want 1", first.ID)
	}

	second, ok, err := c.NextMessage()
	if err != nil || !ok {
		t.Fatalf("second NextMessage: ok=%v err=%v", ok, err)
	}
	if second.ID != 2 {
		t.Errorf("second.ID = %d, want 2", second.ID)
	}

	if _, ok, _ := c.NextMessage(); ok {
		t.Error("expected no more messages")
	}
}

func TestContainerPoisonsOnFatalError(t *testing.T) {
	malformed := []byte{
		0x30, 0x0a,
		0x02, 0x01, 0x01,
		0x60, 0x07, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
	}

	c := NewContainer(config.Default())
	c.Feed(malformed)

	_, ok, err := c.NextMessage()
	if ok || err == nil {
		t.Fatalf("expected a fatal error, got ok=%v err=%v", ok, err)
	}
	first := err

	// Feeding more bytes cannot un-poison the container: the same error
	// must come back, and Feed itself must not touch the buffer.
	c.Feed([]byte{0x01, 0x02, 0x03})
	_, ok, err = c.NextMessage()
	if ok {
		t.Fatal("expected no message after poisoning")
	}
	if err != first {
		t.Errorf("got a different error after Feed: first=%v, second=%v", first, err)
	}
}
