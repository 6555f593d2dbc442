// Package lengths implements the two-pass encoder's first pass: a
// post-order walk over a message.Message that computes and stores every
// node's own body length before package encode performs the single
// forward-pass serialization. Splitting this out mirrors the spec's
// five-component design even though, in Go, the actual ComputeLength logic
// lives on each message type itself (internal/ber's split between
// encodeTag/encodeLength/encodeValue generalizes the same way: sizing is
// cheap and stateless, so it is colocated with the type it sizes).
package lengths

import (
	"github.com/oba-ldap/ldapcodec/ber"
	"github.com/oba-ldap/ldapcodec/message"
)

// Compute walks m bottom-up, computing and storing the body length of the
// operation, the controls list, and the enclosing LDAPMessage SEQUENCE
// itself. It is idempotent: calling it twice on an unchanged tree yields
// the same BodyLength (spec property P-LEN-IDEMP).
func Compute(m *message.Message) int {
	opLen := 0
	if m.Op != nil {
		opLen = m.Op.ComputeLength()
	}
	m.OpBodyLength = opLen

	controlsLen := m.Controls.ComputeLength()
	m.ControlsBodyLength = controlsLen

	body := intWireSize(int64(m.ID)) + opWireSize(m.Op, opLen)
	if m.Controls.Len() > 0 {
		body += 1 + numLengthBytes(controlsLen) + controlsLen
	}
	m.BodyLength = body
	return body
}

// opWireSize returns the full TLV size (APPLICATION tag + length header +
// body) of op, given its already-computed body length.
func opWireSize(op message.ProtocolOp, bodyLen int) int {
	if op == nil {
		return 0
	}
	return 1 + numLengthBytes(bodyLen) + bodyLen
}

func numLengthBytes(n int) int { return ber.NumLengthBytes(n) }

func intWireSize(v int64) int {
	content := len(ber.AppendInteger(nil, v))
	return 1 + numLengthBytes(content) + content
}
