package message

import "github.com/oba-ldap/ldapcodec/ber"

// AbandonRequest is the AbandonRequest ProtocolOp (RFC 4511 §4.11):
//
//	AbandonRequest ::= [APPLICATION 16] MessageID
//
// Per invariant I6, a receiver must silently ignore an AbandonRequest whose
// MessageID does not match any outstanding operation; that policy belongs
// to the application layer driving the codec, not the codec itself.
type AbandonRequest struct {
	MessageID int32
}

func (r *AbandonRequest) Tag() int          { return TagAbandonRequest }
func (r *AbandonRequest) Constructed() bool { return false }

func (r *AbandonRequest) ComputeLength() int {
	return len(ber.AppendInteger(nil, int64(r.MessageID)))
}

func (r *AbandonRequest) EncodeBody(dst []byte) []byte {
	return ber.AppendInteger(dst, int64(r.MessageID))
}

// DecodeAbandonRequest decodes the raw INTEGER content of an
// AbandonRequest.
func DecodeAbandonRequest(content []byte) (*AbandonRequest, error) {
	v, err := ber.DecodeInteger(content)
	if err != nil {
		return nil, err
	}
	return &AbandonRequest{MessageID: int32(v)}, nil
}
