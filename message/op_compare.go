package message

// AttributeValueAssertion is an (attribute, value) equality assertion
// (RFC 4511 §4.1.8):
//
//	AttributeValueAssertion ::= SEQUENCE {
//	    attributeDesc   AttributeDescription,
//	    assertionValue  AssertionValue }
type AttributeValueAssertion struct {
	AttributeDesc  string
	AssertionValue []byte

	bodyLength int
}

func (a *AttributeValueAssertion) computeLength() int {
	a.bodyLength = wireSize(len(a.AttributeDesc)) + wireSize(len(a.AssertionValue))
	return a.bodyLength
}

func (a *AttributeValueAssertion) encodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(a.AttributeDesc))
	return appendOctetStringTLV(dst, a.AssertionValue)
}

func decodeAttributeValueAssertion(content []byte, strict bool) (AttributeValueAssertion, error) {
	desc, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return AttributeValueAssertion{}, err
	}
	value, _, err := readOctetStringBytes(content[n:])
	if err != nil {
		return AttributeValueAssertion{}, err
	}
	return AttributeValueAssertion{AttributeDesc: desc, AssertionValue: value}, nil
}

// CompareRequest is the CompareRequest ProtocolOp (RFC 4511 §4.10):
//
//	CompareRequest ::= [APPLICATION 14] SEQUENCE {
//	    entry LDAPDN,
//	    ava   AttributeValueAssertion }
type CompareRequest struct {
	Entry DN
	AVA   AttributeValueAssertion

	bodyLength int
}

func (r *CompareRequest) Tag() int          { return TagCompareRequest }
func (r *CompareRequest) Constructed() bool { return true }

func (r *CompareRequest) ComputeLength() int {
	n := wireSize(len(r.Entry)) + sequenceHeaderSize(r.AVA.computeLength()) + r.AVA.bodyLength
	r.bodyLength = n
	return n
}

func (r *CompareRequest) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(r.Entry))
	dst = appendSequenceHeader(dst, r.AVA.bodyLength)
	return r.AVA.encodeBody(dst)
}

// DecodeCompareRequest decodes a CompareRequest SEQUENCE content.
func DecodeCompareRequest(content []byte, strict bool) (*CompareRequest, error) {
	entry, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return nil, err
	}
	avaTLV, err := readTLV(content[n:])
	if err != nil {
		return nil, err
	}
	ava, err := decodeAttributeValueAssertion(avaTLV.content, strict)
	if err != nil {
		return nil, err
	}
	return &CompareRequest{Entry: DN(entry), AVA: ava}, nil
}

// CompareResponse is the CompareResponse ProtocolOp (RFC 4511 §4.10):
//
//	CompareResponse ::= [APPLICATION 15] LDAPResult
//
// Its resultCode is compareTrue (6) or compareFalse (5) on a successful
// comparison; any other code reports a failure to perform the comparison.
type CompareResponse struct {
	Result LDAPResult
}

func (r *CompareResponse) Tag() int          { return TagCompareResponse }
func (r *CompareResponse) Constructed() bool { return true }

func (r *CompareResponse) ComputeLength() int {
	return r.Result.ComputeLength()
}

func (r *CompareResponse) EncodeBody(dst []byte) []byte {
	return r.Result.EncodeBody(dst)
}

// DecodeCompareResponse decodes a CompareResponse's LDAPResult content.
func DecodeCompareResponse(content []byte, strict bool) (*CompareResponse, error) {
	result, _, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	return &CompareResponse{Result: result}, nil
}
