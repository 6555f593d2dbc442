package controls

import (
	"bytes"
	"testing"

	"github.com/oba-ldap/ldapcodec/message"
)

func TestPagedResultsRoundTrip(t *testing.T) {
	want := PagedResultsValue{Size: 10, Cookie: []byte("page-2")}
	encoded, err := want.EncodeValue()
	if err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}

	c := message.NewControl(OIDPagedResults, false, encoded)
	if err := Decode(c); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := c.Decoded.(PagedResultsValue)
	if !ok {
		t.Fatalf("Decoded is %T, want PagedResultsValue", c.Decoded)
	}
	if got.Size != want.Size || !bytes.Equal(got.Cookie, want.Cookie) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDontUseCopyRoundTrip(t *testing.T) {
	c := message.NewControl(OIDDontUseCopy, true, nil)
	if err := Decode(c); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Decoded != nil {
		t.Errorf("expected no Decoded value for a valueless control, got %v", c.Decoded)
	}
}

func TestUnknownOIDRoundTripsOpaque(t *testing.T) {
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	c := message.NewControl("1.2.3.4.5.6", false, raw)
	if err := Decode(c); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Decoded != nil {
		t.Errorf("expected unknown OID to leave Decoded nil, got %v", c.Decoded)
	}
	if !bytes.Equal(c.Value, raw) {
		t.Errorf("raw value mutated: got %x, want %x", c.Value, raw)
	}
}

func TestRegisterOverride(t *testing.T) {
	const oid = "1.9.9.9"
	Register(oid, dontUseCopyCodec{})
	if _, ok := Lookup(oid); !ok {
		t.Fatal("expected codec to be registered")
	}
	Register(oid, pagedResultsCodec{})
	c, ok := Lookup(oid)
	if !ok {
		t.Fatal("expected codec to stay registered after override")
	}
	if _, isPaged := c.(pagedResultsCodec); !isPaged {
		t.Errorf("Lookup after override returned %T, want pagedResultsCodec", c)
	}
}
