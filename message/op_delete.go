package message

import "github.com/oba-ldap/ldapcodec/ber"

// DeleteRequest is the DelRequest ProtocolOp (RFC 4511 §4.8):
//
//	DelRequest ::= [APPLICATION 10] LDAPDN
type DeleteRequest struct {
	DN DN
}

func (r *DeleteRequest) Tag() int          { return TagDelRequest }
func (r *DeleteRequest) Constructed() bool { return false }

func (r *DeleteRequest) ComputeLength() int {
	return len(r.DN)
}

func (r *DeleteRequest) EncodeBody(dst []byte) []byte {
	return append(dst, r.DN...)
}

// DecodeDeleteRequest decodes the raw LDAPDN content of a DelRequest.
func DecodeDeleteRequest(content []byte, strict bool) (*DeleteRequest, error) {
	dn, err := ber.DecodeUTF8(content, strict)
	if err != nil {
		return nil, err
	}
	return &DeleteRequest{DN: DN(dn)}, nil
}

// DeleteResponse is the DelResponse ProtocolOp (RFC 4511 §4.8):
//
//	DelResponse ::= [APPLICATION 11] LDAPResult
type DeleteResponse struct {
	Result LDAPResult
}

func (r *DeleteResponse) Tag() int          { return TagDelResponse }
func (r *DeleteResponse) Constructed() bool { return true }

func (r *DeleteResponse) ComputeLength() int {
	return r.Result.ComputeLength()
}

func (r *DeleteResponse) EncodeBody(dst []byte) []byte {
	return r.Result.EncodeBody(dst)
}

// DecodeDeleteResponse decodes the LDAPResult content of a DelResponse.
func DecodeDeleteResponse(content []byte, strict bool) (*DeleteResponse, error) {
	result, _, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	return &DeleteResponse{Result: result}, nil
}
