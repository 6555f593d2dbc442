package message

import "github.com/oba-ldap/ldapcodec/ber"

// ContextTagNewSuperior is the [0] tag for ModifyDNRequest.newSuperior.
const ContextTagNewSuperior = 0

// ModifyDNRequest is the ModifyDNRequest ProtocolOp (RFC 4511 §4.9):
//
//	ModifyDNRequest ::= [APPLICATION 12] SEQUENCE {
//	    entry        LDAPDN,
//	    newrdn       RelativeLDAPDN,
//	    deleteoldrdn BOOLEAN,
//	    newSuperior  [0] LDAPDN OPTIONAL }
type ModifyDNRequest struct {
	Entry          DN
	NewRDN         string
	DeleteOldRDN   bool
	NewSuperior    DN
	HasNewSuperior bool

	bodyLength int
}

func (r *ModifyDNRequest) Tag() int          { return TagModifyDNRequest }
func (r *ModifyDNRequest) Constructed() bool { return true }

func (r *ModifyDNRequest) ComputeLength() int {
	n := wireSize(len(r.Entry)) + wireSize(len(r.NewRDN)) + wireSize(1)
	if r.HasNewSuperior {
		n += wireSize(len(r.NewSuperior))
	}
	r.bodyLength = n
	return n
}

func (r *ModifyDNRequest) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(r.Entry))
	dst = appendOctetStringTLV(dst, []byte(r.NewRDN))
	dst = appendBooleanTLV(dst, r.DeleteOldRDN)
	if r.HasNewSuperior {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ContextTagNewSuperior))
		dst = ber.AppendLength(dst, len(r.NewSuperior))
		dst = append(dst, r.NewSuperior...)
	}
	return dst
}

// DecodeModifyDNRequest decodes a ModifyDNRequest SEQUENCE content.
func DecodeModifyDNRequest(content []byte, strict bool) (*ModifyDNRequest, error) {
	entry, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return nil, err
	}
	rest := content[n:]
	newRDN, n, err := readOctetStringValue(rest, strict)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]
	deleteOld, n, err := readBoolean(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	r := &ModifyDNRequest{Entry: DN(entry), NewRDN: newRDN, DeleteOldRDN: deleteOld}
	if len(rest) > 0 {
		tag, err := peekTag(rest)
		if err != nil {
			return nil, err
		}
		if tag.Class == ber.ClassContextSpecific && tag.Number == ContextTagNewSuperior {
			t, err := readTLV(rest)
			if err != nil {
				return nil, err
			}
			superior, err := ber.DecodeUTF8(t.content, strict)
			if err != nil {
				return nil, err
			}
			r.NewSuperior = DN(superior)
			r.HasNewSuperior = true
		}
	}
	return r, nil
}

// ModifyDNResponse is the ModifyDNResponse ProtocolOp (RFC 4511 §4.9):
//
//	ModifyDNResponse ::= [APPLICATION 13] LDAPResult
type ModifyDNResponse struct {
	Result LDAPResult
}

func (r *ModifyDNResponse) Tag() int          { return TagModifyDNResponse }
func (r *ModifyDNResponse) Constructed() bool { return true }

func (r *ModifyDNResponse) ComputeLength() int {
	return r.Result.ComputeLength()
}

func (r *ModifyDNResponse) EncodeBody(dst []byte) []byte {
	return r.Result.EncodeBody(dst)
}

// DecodeModifyDNResponse decodes a ModifyDNResponse's LDAPResult content.
func DecodeModifyDNResponse(content []byte, strict bool) (*ModifyDNResponse, error) {
	result, _, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	return &ModifyDNResponse{Result: result}, nil
}
