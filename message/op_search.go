package message

// SearchRequest.scope values, RFC 4511 §4.5.1.2.
const (
	ScopeBaseObject   = 0
	ScopeSingleLevel  = 1
	ScopeWholeSubtree = 2
)

// SearchRequest.derefAliases values, RFC 4511 §4.5.1.3.
const (
	DerefNever             = 0
	DerefInSearching       = 1
	DerefFindingBaseObject = 2
	DerefAlways            = 3
)

// SearchRequest is the SearchRequest ProtocolOp (RFC 4511 §4.5.1):
//
//	SearchRequest ::= [APPLICATION 3] SEQUENCE {
//	    baseObject   LDAPDN,
//	    scope        ENUMERATED { ... },
//	    derefAliases ENUMERATED { ... },
//	    sizeLimit    INTEGER (0 .. maxInt),
//	    timeLimit    INTEGER (0 .. maxInt),
//	    typesOnly    BOOLEAN,
//	    filter       Filter,
//	    attributes   AttributeSelection }
type SearchRequest struct {
	BaseObject   DN
	Scope        int
	DerefAliases int
	SizeLimit    int32
	TimeLimit    int32
	TypesOnly    bool
	Filter       *Filter
	Attributes   []string

	attrsBodyLength int
	bodyLength      int
}

func (r *SearchRequest) Tag() int          { return TagSearchRequest }
func (r *SearchRequest) Constructed() bool { return true }

func (r *SearchRequest) ComputeLength() int {
	r.Filter.ComputeLength()
	attrsBody := 0
	for _, a := range r.Attributes {
		attrsBody += wireSize(len(a))
	}
	r.attrsBodyLength = attrsBody
	n := wireSize(len(r.BaseObject)) +
		enumeratedWireSize(int64(r.Scope)) +
		enumeratedWireSize(int64(r.DerefAliases)) +
		intWireSize(int64(r.SizeLimit)) +
		intWireSize(int64(r.TimeLimit)) +
		wireSize(1) +
		r.Filter.WireSize() +
		sequenceHeaderSize(attrsBody) + attrsBody
	r.bodyLength = n
	return n
}

func (r *SearchRequest) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(r.BaseObject))
	dst = appendEnumeratedTLV(dst, int64(r.Scope))
	dst = appendEnumeratedTLV(dst, int64(r.DerefAliases))
	dst = appendIntegerTLV(dst, int64(r.SizeLimit))
	dst = appendIntegerTLV(dst, int64(r.TimeLimit))
	dst = appendBooleanTLV(dst, r.TypesOnly)
	dst = r.Filter.EncodeTLV(dst)
	dst = appendSequenceHeader(dst, r.attrsBodyLength)
	for _, a := range r.Attributes {
		dst = appendOctetStringTLV(dst, []byte(a))
	}
	return dst
}

// DecodeSearchRequest decodes a SearchRequest SEQUENCE content.
func DecodeSearchRequest(content []byte, strict bool) (*SearchRequest, error) {
	base, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return nil, err
	}
	rest := content[n:]

	scope, n, err := readEnumerated(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	deref, n, err := readEnumerated(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	sizeLimit, n, err := readInteger(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	timeLimit, n, err := readInteger(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	typesOnly, n, err := readBoolean(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	filter, n, err := decodeFilter(rest, strict)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]

	attrsTLV, err := readTLV(rest)
	if err != nil {
		return nil, err
	}
	var attrs []string
	body := attrsTLV.content
	for len(body) > 0 {
		a, an, err := readOctetStringValue(body, strict)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
		body = body[an:]
	}

	return &SearchRequest{
		BaseObject:   DN(base),
		Scope:        int(scope),
		DerefAliases: int(deref),
		SizeLimit:    int32(sizeLimit),
		TimeLimit:    int32(timeLimit),
		TypesOnly:    typesOnly,
		Filter:       filter,
		Attributes:   attrs,
	}, nil
}

// SearchResultEntry is the SearchResultEntry ProtocolOp (RFC 4511 §4.5.2):
//
//	SearchResultEntry ::= [APPLICATION 4] SEQUENCE {
//	    objectName LDAPDN,
//	    attributes PartialAttributeList }
type SearchResultEntry struct {
	ObjectName DN
	Attributes []PartialAttribute

	attrsBodyLength int
	bodyLength      int
}

func (r *SearchResultEntry) Tag() int          { return TagSearchResultEntry }
func (r *SearchResultEntry) Constructed() bool { return true }

func (r *SearchResultEntry) ComputeLength() int {
	r.attrsBodyLength = attributeListLength(r.Attributes)
	n := wireSize(len(r.ObjectName)) + sequenceHeaderSize(r.attrsBodyLength) + r.attrsBodyLength
	r.bodyLength = n
	return n
}

func (r *SearchResultEntry) EncodeBody(dst []byte) []byte {
	dst = appendOctetStringTLV(dst, []byte(r.ObjectName))
	return appendAttributeList(dst, r.Attributes, r.attrsBodyLength)
}

// DecodeSearchResultEntry decodes a SearchResultEntry SEQUENCE content.
func DecodeSearchResultEntry(content []byte, strict bool) (*SearchResultEntry, error) {
	name, n, err := readOctetStringValue(content, strict)
	if err != nil {
		return nil, err
	}
	attrs, _, err := decodeAttributeList(content[n:], strict)
	if err != nil {
		return nil, err
	}
	return &SearchResultEntry{ObjectName: DN(name), Attributes: attrs}, nil
}

// SearchResultReference is the SearchResultReference ProtocolOp (RFC 4511
// §4.5.3):
//
//	SearchResultReference ::= [APPLICATION 19] SEQUENCE OF uri URI
//
// Unlike LDAPResult.referral, this SEQUENCE OF has no extra context-tag
// wrapper: the operation's own APPLICATION 19 tag plays that role directly.
type SearchResultReference struct {
	URIs []string

	bodyLength int
}

func (r *SearchResultReference) Tag() int          { return TagSearchResultReference }
func (r *SearchResultReference) Constructed() bool { return true }

func (r *SearchResultReference) ComputeLength() int {
	n := 0
	for _, u := range r.URIs {
		n += wireSize(len(u))
	}
	r.bodyLength = n
	return n
}

func (r *SearchResultReference) EncodeBody(dst []byte) []byte {
	for _, u := range r.URIs {
		dst = appendOctetStringTLV(dst, []byte(u))
	}
	return dst
}

// DecodeSearchResultReference decodes a SearchResultReference SEQUENCE OF
// content.
func DecodeSearchResultReference(content []byte, strict bool) (*SearchResultReference, error) {
	var uris []string
	rest := content
	for len(rest) > 0 {
		u, n, err := readOctetStringValue(rest, strict)
		if err != nil {
			return nil, err
		}
		uris = append(uris, u)
		rest = rest[n:]
	}
	return &SearchResultReference{URIs: uris}, nil
}

// SearchResultDone is the SearchResultDone ProtocolOp (RFC 4511 §4.5.2):
//
//	SearchResultDone ::= [APPLICATION 5] LDAPResult
type SearchResultDone struct {
	Result LDAPResult
}

func (r *SearchResultDone) Tag() int          { return TagSearchResultDone }
func (r *SearchResultDone) Constructed() bool { return true }

func (r *SearchResultDone) ComputeLength() int {
	return r.Result.ComputeLength()
}

func (r *SearchResultDone) EncodeBody(dst []byte) []byte {
	return r.Result.EncodeBody(dst)
}

// DecodeSearchResultDone decodes a SearchResultDone's LDAPResult content.
func DecodeSearchResultDone(content []byte, strict bool) (*SearchResultDone, error) {
	result, _, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	return &SearchResultDone{Result: result}, nil
}
