package encode

import (
	"bytes"
	"testing"

	"github.com/oba-ldap/ldapcodec/config"
	"github.com/oba-ldap/ldapcodec/message"
)

func TestEncode(t *testing.T) {
	cfg := config.Default()

	t.Run("BindRequest v3 simple anonymous", func(t *testing.T) {
		want := []byte{0x30, 0x0c, 0x02, 0x01, 0x01, 0x60, 0x07, 0x02, 0x01, 0x03, 0x04, 0x00, 0x80, 0x00}
		op := &message.BindRequest{
			Version: 3,
			Name:    "",
			Auth:    message.AuthenticationChoice{Tag: message.AuthSimple, Simple: []byte{}},
		}
		m := message.NewMessage(1, op)
		got, err := Encode(m, cfg)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("got  %x\nwant %x", got, want)
		}
	})

	t.Run("BindResponse success", func(t *testing.T) {
		want := []byte{0x30, 0x0c, 0x02, 0x01, 0x01, 0x61, 0x07, 0x0a, 0x01, 0x00, 0x04, 0x00, 0x04, 0x00}
		op := &message.BindResponse{
			Result: message.LDAPResult{ResultCode: message.ResultSuccess},
		}
		m := message.NewMessage(1, op)
		got, err := Encode(m, cfg)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("got  %x\nwant %x", got, want)
		}
	})

	t.Run("SearchRequest base-object equality filter", func(t *testing.T) {
		want := []byte{
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
		op := &message.SearchRequest{
			BaseObject:   "",
			Scope:        message.ScopeBaseObject,
			DerefAliases: message.DerefNever,
			SizeLimit:    0,
			TimeLimit:    0,
			TypesOnly:    false,
			Filter:       message.NewAndFilter(message.NewEqualityFilter("objectClass", []byte("top"))),
			Attributes:   nil,
		}
		m := message.NewMessage(2, op)
		got, err := Encode(m, cfg)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("got  %x\nwant %x", got, want)
		}
	})

	t.Run("UnbindRequest", func(t *testing.T) {
		want := []byte{0x30, 0x05, 0x02, 0x01, 0x03, 0x42, 0x00}
		m := message.NewMessage(3, message.UnbindRequest{})
		got, err := Encode(m, cfg)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("got  %x\nwant %x", got, want)
		}
	})

	t.Run("rejects non-positive message ID", func(t *testing.T) {
		m := message.NewMessage(-1, message.UnbindRequest{})
		if _, err := Encode(m, cfg); err == nil {
			t.Error("expected error for negative message ID")
		}
	})

	t.Run("rejects nil operation", func(t *testing.T) {
		m := &message.Message{ID: 1}
		if _, err := Encode(m, cfg); err == nil {
			t.Error("expected error for nil operation")
		}
	})

	t.Run("idempotent length computation", func(t *testing.T) {
		op := &message.SearchRequest{
			Filter:     message.NewPresentFilter("objectClass"),
			Attributes: []string{"cn", "sn"},
		}
		m := message.NewMessage(7, op)
		first, err := Encode(m, cfg)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		second, err := Encode(m, cfg)
		if err != nil {
			t.Fatalf("Encode (second pass): %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("re-encoding the same message produced different bytes:\n%x\n%x", first, second)
		}
	})
}
