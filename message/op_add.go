package message

// AddRequest is the AddRequest ProtocolOp (RFC 4511 §4.7):
//
//	AddRequest ::= [APPLICATION 8] SEQUENCE {
//	    entry      LDAPDN,
//	    attributes AttributeList }
type AddRequest struct {
	Entry      DN
	Attributes []PartialAttribute

	attrsBodyLength int
	bodyLength      int
}

func (r *AddRequest) Tag() int          { return TagAddRequest }
func (r *AddRequest) Constructed() bool { return true }

func (r *AddRequest) ComputeLength() int {
	r.attrsBodyLength = attributeListLength(r.Attributes)
	n := wireSize(len(r.Entry)) + sequenceHeaderSize(r.attrsBodyLength) + r.attrsBodyLength
	r.bodyLength = n
	return n
}

func (r *AddRequest) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(r.Entry))
	return appendAttributeList(dst, r.Attributes, r.attrsBodyLength)
}

// DecodeAddRequest decodes an AddRequest SEQUENCE content.
func DecodeAddRequest(content []byte, strict bool) (*AddRequest, error) {
	entry, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return nil, err
	}
	attrs, _, err := decodeAttributeList(content[n:], strict)
	if err != nil {
		return nil, err
	}
	return &AddRequest{Entry: DN(entry), Attributes: attrs}, nil
}

// AddResponse is the AddResponse ProtocolOp (RFC 4511 §4.7):
//
//	AddResponse ::= [APPLICATION 9] LDAPResult
type AddResponse struct {
	Result LDAPResult
}

func (r *AddResponse) Tag() int          { return TagAddResponse }
func (r *AddResponse) Constructed() bool { return true }

func (r *AddResponse) ComputeLength() int {
	return r.Result.ComputeLength()
}

func (r *AddResponse) EncodeBody(dst []byte) []byte {
	return r.Result.EncodeBody(dst)
}

// DecodeAddResponse decodes an AddResponse's LDAPResult content.
func DecodeAddResponse(content []byte, strict bool) (*AddResponse, error) {
	result, _, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	return &AddResponse{Result: result}, nil
}
