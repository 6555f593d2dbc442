package message

// UnbindRequest is the UnbindRequest ProtocolOp (RFC 4511 §4.3):
//
//	UnbindRequest ::= [APPLICATION 2] NULL
//
// It carries no fields; the NULL content is always zero-length.
type UnbindRequest struct{}

func (UnbindRequest) Tag() int                      { return TagUnbindRequest }
func (UnbindRequest) Constructed() bool             { return false }
func (UnbindRequest) ComputeLength() int            { return 0 }
func (UnbindRequest) EncodeBody(dst []byte) []byte { return dst }

// DecodeUnbindRequest decodes the (always empty) NULL content of an
// UnbindRequest.
func DecodeUnbindRequest(content []byte) (UnbindRequest, error) {
	if len(content) != 0 {
		return UnbindRequest{}, NewParseError(0, "UnbindRequest NULL content must be empty", nil)
	}
	return UnbindRequest{}, nil
}
