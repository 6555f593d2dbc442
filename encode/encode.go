// Package encode performs the LDAPMessage envelope's single forward-pass
// serialization once package lengths has sized every node. It owns the
// top-level SEQUENCE/tag wiring (message ID, protocolOp CHOICE dispatch,
// the optional [0] Controls) that RFC 4511 §4.1.1 describes; each
// operation's own body is produced by its ComputeLength/EncodeBody pair in
// package message.
package encode

import (
	"errors"
	"fmt"

	"github.com/oba-ldap/ldapcodec/ber"
	"github.com/oba-ldap/ldapcodec/config"
	"github.com/oba-ldap/ldapcodec/lengths"
	"github.com/oba-ldap/ldapcodec/message"
)

// Errors surfaced by Encode.
var (
	ErrNilOperation = errors.New("encode: message has no operation")
)

// Error reports an encode-time failure together with the operation that
// failed, in the style of message.ParseError on the decode side.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("encode: %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Encode serializes m into a single BER PDU, returning a freshly allocated
// buffer. It validates invariant I1 (message ID must be in 1..maxInt for an
// emitted PDU) before sizing and writing. ID 0, the ID unsolicited
// notifications carry, is rejected too: Encode has no way to distinguish
// an intentional 0 from a caller bug.
func Encode(m *message.Message, cfg config.Options) ([]byte, error) {
	if m.Op == nil {
		return nil, &Error{Op: "validate", Err: ErrNilOperation}
	}
	if m.ID <= 0 {
		return nil, &Error{Op: "validate", Err: message.ErrNonPositiveID}
	}
	if m.ID > message.MaxMessageID {
		return nil, &Error{Op: "validate", Err: message.ErrInvalidMessageID}
	}

	if r, ok := resultCarrier(m.Op); ok {
		r.PrepareForEncode(cfg.TrimMatchedDN)
	}

	body := lengths.Compute(m)
	total := 1 + ber.NumLengthBytes(body) + body
	dst := make([]byte, 0, total)

	dst = append(dst, byte(ber.ClassUniversal|ber.Constructed|ber.TagSequence))
	dst = ber.AppendLength(dst, body)
	dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagInteger))
	idContent := ber.AppendInteger(nil, int64(m.ID))
	dst = ber.AppendLength(dst, len(idContent))
	dst = append(dst, idContent...)

	opClass := byte(ber.ClassApplication)
	if m.Op.Constructed() {
		opClass |= ber.Constructed
	}
	dst = append(dst, opClass|byte(m.Op.Tag()))
	dst = ber.AppendLength(dst, m.OpBodyLength)
	dst = m.Op.EncodeBody(dst)

	if m.Controls.Len() > 0 {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Constructed|message.ContextTagControls))
		dst = ber.AppendLength(dst, m.ControlsBodyLength)
		dst = m.Controls.EncodeBody(dst)
	}

	return dst, nil
}

// resultCarrier reports whether op embeds an LDAPResult needing
// PrepareForEncode normalization before sizing.
func resultCarrier(op message.ProtocolOp) (*message.LDAPResult, bool) {
	switch v := op.(type) {
	case *message.BindResponse:
		return &v.Result, true
	case *message.SearchResultDone:
		return &v.Result, true
	case *message.ModifyResponse:
		return &v.Result, true
	case *message.AddResponse:
		return &v.Result, true
	case *message.DeleteResponse:
		return &v.Result, true
	case *message.ModifyDNResponse:
		return &v.Result, true
	case *message.CompareResponse:
		return &v.Result, true
	case *message.ExtendedResponse:
		return &v.Result, true
	default:
		return nil, false
	}
}
