package message

import "github.com/oba-ldap/ldapcodec/ber"

// Context tags for ExtendedRequest (RFC 4511 §4.12).
const (
	ContextTagRequestName  = 0
	ContextTagRequestValue = 1
)

// Context tags for ExtendedResponse (RFC 4511 §4.12).
const (
	ContextTagResponseName  = 10
	ContextTagResponseValue = 11
)

// Context tags for IntermediateResponse (RFC 4511 §4.13).
const (
	ContextTagIntermediateName  = 0
	ContextTagIntermediateValue = 1
)

// ExtendedRequest is the ExtendedRequest ProtocolOp (RFC 4511 §4.12):
//
//	ExtendedRequest ::= [APPLICATION 23] SEQUENCE {
//	    requestName  [0] LDAPOID,
//	    requestValue [1] OCTET STRING OPTIONAL }
type ExtendedRequest struct {
	RequestName     string
	RequestValue    []byte
	HasRequestValue bool

	bodyLength int
}

func (r *ExtendedRequest) Tag() int          { return TagExtendedRequest }
func (r *ExtendedRequest) Constructed() bool { return true }

func (r *ExtendedRequest) ComputeLength() int {
	n := wireSize(len(r.RequestName))
	if r.HasRequestValue {
		n += wireSize(len(r.RequestValue))
	}
	r.bodyLength = n
	return n
}

func (r *ExtendedRequest) EncodeBody(dst []byte) []byte {
	dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ContextTagRequestName))
	dst = ber.AppendLength(dst, len(r.RequestName))
	dst = append(dst, r.RequestName...)
	if r.HasRequestValue {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ContextTagRequestValue))
		dst = ber.AppendLength(dst, len(r.RequestValue))
		dst = append(dst, r.RequestValue...)
	}
	return dst
}

// DecodeExtendedRequest decodes an ExtendedRequest SEQUENCE content.
func DecodeExtendedRequest(content []byte, strict bool) (*ExtendedRequest, error) {
	nameTLV, err := readTLV(content)
	if err != nil {
		return nil, err
	}
	name, err := ber.DecodeUTF8(nameTLV.content, strict)
	if err != nil {
		return nil, err
	}
	r := &ExtendedRequest{RequestName: name}
	rest := content[nameTLV.consumed:]
	if len(rest) > 0 {
		t, err := readTLV(rest)
		if err != nil {
			return nil, err
		}
		r.RequestValue = append([]byte(nil), t.content...)
		r.HasRequestValue = true
	}
	return r, nil
}

// ExtendedResponse is the ExtendedResponse ProtocolOp (RFC 4511 §4.12):
//
//	ExtendedResponse ::= [APPLICATION 24] SEQUENCE {
//	    COMPONENTS OF LDAPResult,
//	    responseName  [10] LDAPOID OPTIONAL,
//	    responseValue [11] OCTET STRING OPTIONAL }
type ExtendedResponse struct {
	Result           LDAPResult
	ResponseName     string
	HasResponseName  bool
	ResponseValue    []byte
	HasResponseValue bool

	bodyLength int
}

func (r *ExtendedResponse) Tag() int          { return TagExtendedResponse }
func (r *ExtendedResponse) Constructed() bool { return true }

func (r *ExtendedResponse) ComputeLength() int {
	n := r.Result.ComputeLength()
	if r.HasResponseName {
		n += wireSize(len(r.ResponseName))
	}
	if r.HasResponseValue {
		n += wireSize(len(r.ResponseValue))
	}
	r.bodyLength = n
	return n
}

func (r *ExtendedResponse) EncodeBody(dst []byte) []byte {
	dst = r.Result.EncodeBody(dst)
	if r.HasResponseName {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ContextTagResponseName))
		dst = ber.AppendLength(dst, len(r.ResponseName))
		dst = append(dst, r.ResponseName...)
	}
	if r.HasResponseValue {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ContextTagResponseValue))
		dst = ber.AppendLength(dst, len(r.ResponseValue))
		dst = append(dst, r.ResponseValue...)
	}
	return dst
}

// DecodeExtendedResponse decodes an ExtendedResponse SEQUENCE content.
func DecodeExtendedResponse(content []byte, strict bool) (*ExtendedResponse, error) {
	result, n, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	r := &ExtendedResponse{Result: result}
	rest := content[n:]
	for len(rest) > 0 {
		tag, err := peekTag(rest)
		if err != nil {
			return nil, err
		}
		t, err := readTLV(rest)
		if err != nil {
			return nil, err
		}
		switch {
		case tag.Class == ber.ClassContextSpecific && tag.Number == ContextTagResponseName:
			name, err := ber.DecodeUTF8(t.content, strict)
			if err != nil {
				return nil, err
			}
			r.ResponseName = name
			r.HasResponseName = true
		case tag.Class == ber.ClassContextSpecific && tag.Number == ContextTagResponseValue:
			r.ResponseValue = append([]byte(nil), t.content...)
			r.HasResponseValue = true
		default:
			return nil, &ber.TagMismatchError{Actual: tag}
		}
		rest = rest[t.consumed:]
	}
	return r, nil
}

// IntermediateResponse is the IntermediateResponse ProtocolOp (RFC 4511
// §4.13):
//
//	IntermediateResponse ::= [APPLICATION 25] SEQUENCE {
//	    responseName  [0] LDAPOID OPTIONAL,
//	    responseValue [1] OCTET STRING OPTIONAL }
type IntermediateResponse struct {
	ResponseName     string
	HasResponseName  bool
	ResponseValue    []byte
	HasResponseValue bool

	bodyLength int
}

func (r *IntermediateResponse) Tag() int          { return TagIntermediateResponse }
func (r *IntermediateResponse) Constructed() bool { return true }

func (r *IntermediateResponse) ComputeLength() int {
	n := 0
	if r.HasResponseName {
		n += wireSize(len(r.ResponseName))
	}
	if r.HasResponseValue {
		n += wireSize(len(r.ResponseValue))
	}
	r.bodyLength = n
	return n
}

func (r *IntermediateResponse) EncodeBody(dst []byte) []byte {
	if r.HasResponseName {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ContextTagIntermediateName))
		dst = ber.AppendLength(dst, len(r.ResponseName))
		dst = append(dst, r.ResponseName...)
	}
	if r.HasResponseValue {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Primitive|ContextTagIntermediateValue))
		dst = ber.AppendLength(dst, len(r.ResponseValue))
		dst = append(dst, r.ResponseValue...)
	}
	return dst
}

// DecodeIntermediateResponse decodes an IntermediateResponse SEQUENCE
// content.
func DecodeIntermediateResponse(content []byte, strict bool) (*IntermediateResponse, error) {
	r := &IntermediateResponse{}
	rest := content
	for len(rest) > 0 {
		tag, err := peekTag(rest)
		if err != nil {
			return nil, err
		}
		t, err := readTLV(rest)
		if err != nil {
			return nil, err
		}
		switch {
		case tag.Class == ber.ClassContextSpecific && tag.Number == ContextTagIntermediateName:
			name, err := ber.DecodeUTF8(t.content, strict)
			if err != nil {
				return nil, err
			}
			r.ResponseName = name
			r.HasResponseName = true
		case tag.Class == ber.ClassContextSpecific && tag.Number == ContextTagIntermediateValue:
			r.ResponseValue = append([]byte(nil), t.content...)
			r.HasResponseValue = true
		default:
			return nil, &ber.TagMismatchError{Actual: tag}
		}
		rest = rest[t.consumed:]
	}
	return r, nil
}
