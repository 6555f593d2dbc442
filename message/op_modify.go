package message

// Modify-operation codes, RFC 4511 §4.6 plus the increment extension
// (RFC 4525).
const (
	ModifyAdd       = 0
	ModifyDelete    = 1
	ModifyReplace   = 2
	ModifyIncrement = 3
)

// Change is one entry of a ModifyRequest's changes SEQUENCE OF (RFC 4511
// §4.6):
//
//	change ::= SEQUENCE {
//	    operation    ENUMERATED { add(0), delete(1), replace(2), ... },
//	    modification PartialAttribute }
type Change struct {
	Operation    int
	Modification PartialAttribute

	bodyLength int
}

func (c *Change) computeLength() int {
	c.bodyLength = enumeratedWireSize(int64(c.Operation)) + sequenceHeaderSize(c.Modification.ComputeLength()) + c.Modification.bodyLength
	return c.bodyLength
}

func (c *Change) encodeBody(dst []byte) []byte {
	dst = appendEnumeratedTLV(dst, int64(c.Operation))
	dst = appendSequenceHeader(dst, c.Modification.bodyLength)
	return c.Modification.EncodeBody(dst)
}

func decodeChange(content []byte, strict bool) (Change, error) {
	op, n, err := readEnumerated(content)
	if err != nil {
		return Change{}, err
	}
	modTLV, err := readTLV(content[n:])
	if err != nil {
		return Change{}, err
	}
	mod, err := decodePartialAttribute(modTLV.content, strict)
	if err != nil {
		return Change{}, err
	}
	return Change{Operation: int(op), Modification: mod}, nil
}

// ModifyRequest is the ModifyRequest ProtocolOp (RFC 4511 §4.6):
//
//	ModifyRequest ::= [APPLICATION 6] SEQUENCE {
//	    object  LDAPDN,
//	    changes SEQUENCE OF change Change }
type ModifyRequest struct {
	Object  DN
	Changes []Change

	changesBodyLength int
	bodyLength        int
}

func (r *ModifyRequest) Tag() int          { return TagModifyRequest }
func (r *ModifyRequest) Constructed() bool { return true }

func (r *ModifyRequest) ComputeLength() int {
	body := 0
	for i := range r.Changes {
		body += wireSize(r.Changes[i].computeLength())
	}
	r.changesBodyLength = body
	n := wireSize(len(r.Object)) + sequenceHeaderSize(body) + body
	r.bodyLength = n
	return n
}

func (r *ModifyRequest) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(r.Object))
	dst = appendSequenceHeader(dst, r.changesBodyLength)
	for i := range r.Changes {
		dst = appendSequenceHeader(dst, r.Changes[i].bodyLength)
		dst = r.Changes[i].encodeBody(dst)
	}
	return dst
}

// DecodeModifyRequest decodes a ModifyRequest SEQUENCE content.
func DecodeModifyRequest(content []byte, strict bool) (*ModifyRequest, error) {
	object, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return nil, err
	}
	changesTLV, err := readTLV(content[n:])
	if err != nil {
		return nil, err
	}
	var changes []Change
	rest := changesTLV.content
	for len(rest) > 0 {
		changeTLV, err := readTLV(rest)
		if err != nil {
			return nil, err
		}
		c, err := decodeChange(changeTLV.content, strict)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
		rest = rest[changeTLV.consumed:]
	}
	return &ModifyRequest{Object: DN(object), Changes: changes}, nil
}

// ModifyResponse is the ModifyResponse ProtocolOp (RFC 4511 §4.6):
//
//	ModifyResponse ::= [APPLICATION 7] LDAPResult
type ModifyResponse struct {
	Result LDAPResult
}

func (r *ModifyResponse) Tag() int          { return TagModifyResponse }
func (r *ModifyResponse) Constructed() bool { return true }

func (r *ModifyResponse) ComputeLength() int {
	return r.Result.ComputeLength()
}

func (r *ModifyResponse) EncodeBody(dst []byte) []byte {
	return r.Result.EncodeBody(dst)
}

// DecodeModifyResponse decodes a ModifyResponse's LDAPResult content.
func DecodeModifyResponse(content []byte, strict bool) (*ModifyResponse, error) {
	result, _, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	return &ModifyResponse{Result: result}, nil
}
