package message

import "github.com/oba-ldap/ldapcodec/ber"

// Authentication choice tags, RFC 4511 §4.2.
const (
	AuthSimple = 0
	AuthSASL   = 3
)

// SASLCredentials carries a SASL mechanism name and optional credentials.
type SASLCredentials struct {
	Mechanism       string
	Credentials     []byte
	HasCredentials  bool
}

// AuthenticationChoice is the BindRequest authentication CHOICE.
type AuthenticationChoice struct {
	// Tag is AuthSimple or AuthSASL.
	Tag  int
	Simple []byte
	SASL   SASLCredentials

	bodyLength int // only meaningful when Tag == AuthSASL
}

func (a *AuthenticationChoice) computeLength() int {
	switch a.Tag {
	case AuthSimple:
		return len(a.Simple)
	case AuthSASL:
		n := wireSize(len(a.SASL.Mechanism))
		if a.SASL.HasCredentials {
			n += wireSize(len(a.SASL.Credentials))
		}
		a.bodyLength = n
		return n
	default:
		return 0
	}
}

func (a *AuthenticationChoice) wireSize() int {
	if a.Tag == AuthSimple {
		return 1 + ber.NumLengthBytes(len(a.Simple)) + len(a.Simple)
	}
	return 1 + ber.NumLengthBytes(a.bodyLength) + a.bodyLength
}

func (a *AuthenticationChoice) encodeTLV(dst []byte) []byte {
	switch a.Tag {
	case AuthSimple:
		dst = appendContextTag(dst, AuthSimple, false, len(a.Simple))
		return append(dst, a.Simple...)
	case AuthSASL:
		dst = appendContextTag(dst, AuthSASL, true, a.bodyLength)
		dst = appendOctetStringTLV(dst, []byte(a.SASL.Mechanism))
		if a.SASL.HasCredentials {
			dst = appendOctetStringTLV(dst, a.SASL.Credentials)
		}
		return dst
	default:
		return dst
	}
}

// BindRequest is the BindRequest ProtocolOp (RFC 4511 §4.2):
//
//	BindRequest ::= [APPLICATION 0] SEQUENCE {
//	    version        INTEGER (1..127),
//	    name           LDAPDN,
//	    authentication AuthenticationChoice }
type BindRequest struct {
	Version int
	Name    DN
	Auth    AuthenticationChoice

	bodyLength int
}

func (r *BindRequest) Tag() int         { return TagBindRequest }
func (r *BindRequest) Constructed() bool { return true }

func (r *BindRequest) ComputeLength() int {
	r.Auth.computeLength()
	n := intWireSize(int64(r.Version)) + wireSize(len(r.Name)) + r.Auth.wireSize()
	r.bodyLength = n
	return n
}

func (r *BindRequest) EncodeBody(dst []byte) []byte {
	dst = appendIntegerTLV(dst, int64(r.Version))
	dst = appendOctetStringTLV(dst, []byte(r.Name))
	return r.Auth.encodeTLV(dst)
}

// decodeAuthenticationChoice decodes one AuthenticationChoice TLV from the
// start of b, returning the choice and bytes consumed.
func decodeAuthenticationChoice(b []byte, strict bool) (AuthenticationChoice, int, error) {
	t, err := readTLV(b)
	if err != nil {
		return AuthenticationChoice{}, 0, err
	}
	if t.tag.Class != ber.ClassContextSpecific {
		return AuthenticationChoice{}, 0, &ber.TagMismatchError{Expected: ber.Tag{Class: ber.ClassContextSpecific}, Actual: t.tag}
	}
	switch t.tag.Number {
	case AuthSimple:
		return AuthenticationChoice{Tag: AuthSimple, Simple: append([]byte(nil), t.content...)}, t.consumed, nil
	case AuthSASL:
		mech, n, err := readOctetStringValue(t.content, strict)
		if err != nil {
			return AuthenticationChoice{}, 0, err
		}
		rest := t.content[n:]
		sasl := SASLCredentials{Mechanism: mech}
		if len(rest) > 0 {
			creds, _, err := readOctetStringBytes(rest)
			if err != nil {
				return AuthenticationChoice{}, 0, err
			}
			sasl.Credentials = creds
			sasl.HasCredentials = true
		}
		return AuthenticationChoice{Tag: AuthSASL, SASL: sasl}, t.consumed, nil
	default:
		return AuthenticationChoice{}, 0, &ber.TagMismatchError{Actual: t.tag}
	}
}

// DecodeBindRequest decodes a BindRequest SEQUENCE content.
func DecodeBindRequest(content []byte, strict bool) (*BindRequest, error) {
	version, n, err := readInteger(content)
	if err != nil {
		return nil, err
	}
	rest := content[n:]
	name, n, err := readOctetStringValue(rest, strict)
	if err != nil {
		return nil, err
	}
	rest = rest[n:]
	auth, _, err := decodeAuthenticationChoice(rest, strict)
	if err != nil {
		return nil, err
	}
	return &BindRequest{Version: int(version), Name: DN(name), Auth: auth}, nil
}

// IsAnonymous reports whether r is an anonymous simple bind (empty name,
// empty password).
func (r *BindRequest) IsAnonymous() bool {
	return r.Name == "" && r.Auth.Tag == AuthSimple && len(r.Auth.Simple) == 0
}

// BindResponse is the BindResponse ProtocolOp (RFC 4511 §4.2.2):
//
//	BindResponse ::= [APPLICATION 1] SEQUENCE {
//	    COMPONENTS OF LDAPResult,
//	    serverSaslCreds [7] OCTET STRING OPTIONAL }
type BindResponse struct {
	Result             LDAPResult
	ServerSASLCreds    []byte
	HasServerSASLCreds bool

	bodyLength int
}

// ContextTagServerSASLCreds is the [7] tag for BindResponse.serverSaslCreds.
const ContextTagServerSASLCreds = 7

func (r *BindResponse) Tag() int          { return TagBindResponse }
func (r *BindResponse) Constructed() bool { return true }

func (r *BindResponse) ComputeLength() int {
	n := r.Result.ComputeLength()
	if r.HasServerSASLCreds {
		n += wireSize(len(r.ServerSASLCreds))
	}
	r.bodyLength = n
	return n
}

func (r *BindResponse) EncodeBody(dst []byte) []byte {
	dst = r.Result.EncodeBody(dst)
	if r.HasServerSASLCreds {
		dst = appendContextTag(dst, ContextTagServerSASLCreds, false, len(r.ServerSASLCreds))
		dst = append(dst, r.ServerSASLCreds...)
	}
	return dst
}

// DecodeBindResponse decodes a BindResponse SEQUENCE content.
func DecodeBindResponse(content []byte, strict bool) (*BindResponse, error) {
	result, n, err := decodeLDAPResult(content, strict)
	if err != nil {
		return nil, err
	}
	r := &BindResponse{Result: result}
	rest := content[n:]
	if len(rest) > 0 {
		tag, err := peekTag(rest)
		if err != nil {
			return nil, err
		}
		if tag.Class == ber.ClassContextSpecific && tag.Number == ContextTagServerSASLCreds {
			t, err := readTLV(rest)
			if err != nil {
				return nil, err
			}
			r.ServerSASLCreds = append([]byte(nil), t.content...)
			r.HasServerSASLCreds = true
		}
	}
	return r, nil
}
