package message

import "github.com/oba-ldap/ldapcodec/ber"

// ContextTagReferral is the [3] tag carrying LDAPResult.referral.
const ContextTagReferral = 3

// LDAPResult is the common result envelope embedded in every response
// except SearchResultEntry, SearchResultReference and IntermediateResponse
// (RFC 4511 §4.1.9):
//
//	LDAPResult ::= SEQUENCE {
//	    resultCode        ENUMERATED { ... },
//	    matchedDN         LDAPDN,
//	    diagnosticMessage LDAPString,
//	    referral          [3] Referral OPTIONAL }
type LDAPResult struct {
	ResultCode        ResultCode
	MatchedDN         DN
	DiagnosticMessage string
	Referral          []string

	// Transient, set by ComputeLength.
	ReferralBodyLength int
	bodyLength         int
}

// HasReferral reports whether r carries a non-empty referral list.
func (r *LDAPResult) HasReferral() bool { return len(r.Referral) > 0 }

// PrepareForEncode applies encoder-side normalization that depends on
// config.Options — currently just the matchedDN leading-whitespace trim
// (spec Open Question (c)). It is separate from ComputeLength/EncodeBody
// because those two stay config-free and operate purely on already
// normalized data.
func (r *LDAPResult) PrepareForEncode(trimMatchedDN bool) {
	r.MatchedDN = r.MatchedDN.TrimLeadingSpace(trimMatchedDN)
}

// ComputeLength computes and stores r's own SEQUENCE content length,
// returning it.
func (r *LDAPResult) ComputeLength() int {
	n := enumeratedWireSize(int64(r.ResultCode))
	n += wireSize(len(r.MatchedDN))
	n += wireSize(len(r.DiagnosticMessage))
	if r.HasReferral() {
		body := 0
		for _, uri := range r.Referral {
			body += wireSize(len(uri))
		}
		r.ReferralBodyLength = body
		n += 1 + ber.NumLengthBytes(body) + body
	} else {
		r.ReferralBodyLength = 0
	}
	r.bodyLength = n
	return n
}

// EncodeBody appends r's SEQUENCE content to dst.
func (r *LDAPResult) EncodeBody(dst []byte) []byte {
	dst = appendEnumeratedTLV(dst, int64(r.ResultCode))
	dst = appendOctetStringTLV(dst, []byte(r.MatchedDN))
	dst = appendOctetStringTLV(dst, []byte(r.DiagnosticMessage))
	if r.HasReferral() {
		dst = append(dst, byte(ber.ClassContextSpecific|ber.Constructed|ContextTagReferral))
		dst = ber.AppendLength(dst, r.ReferralBodyLength)
		for _, uri := range r.Referral {
			dst = appendOctetStringTLV(dst, []byte(uri))
		}
	}
	return dst
}

// decodeLDAPResult decodes the COMPONENTS OF LDAPResult prefix shared by
// every result-bearing op, returning the result and the number of bytes
// of content consumed (so callers with trailing optional fields of their
// own, like BindResponse, know where those start).
func decodeLDAPResult(content []byte, strict bool) (LDAPResult, int, error) {
	code, n, err := readEnumerated(content)
	if err != nil {
		return LDAPResult{}, 0, err
	}
	rest := content[n:]
	consumed := n

	matchedDN, n, err := readOctetStringValue(rest, strict)
	if err != nil {
		return LDAPResult{}, 0, err
	}
	rest = rest[n:]
	consumed += n

	diag, n, err := readOctetStringValue(rest, strict)
	if err != nil {
		return LDAPResult{}, 0, err
	}
	rest = rest[n:]
	consumed += n

	r := LDAPResult{ResultCode: ResultCode(code), MatchedDN: DN(matchedDN), DiagnosticMessage: diag}

	if len(rest) > 0 {
		tag, err := peekTag(rest)
		if err != nil {
			return LDAPResult{}, 0, err
		}
		if tag.Class == ber.ClassContextSpecific && tag.Number == ContextTagReferral {
			t, err := readTLV(rest)
			if err != nil {
				return LDAPResult{}, 0, err
			}
			body := t.content
			for len(body) > 0 {
				uri, un, err := readOctetStringValue(body, strict)
				if err != nil {
					return LDAPResult{}, 0, err
				}
				r.Referral = append(r.Referral, uri)
				body = body[un:]
			}
			consumed += t.consumed
		}
	}
	return r, consumed, nil
}

func enumeratedWireSize(v int64) int {
	return wireSize(len(ber.AppendEnumerated(nil, v)))
}

func appendEnumeratedTLV(dst []byte, v int64) []byte {
	dst = append(dst, byte(ber.ClassUniversal|ber.Primitive|ber.TagEnumerated))
	content := ber.AppendEnumerated(nil, v)
	dst = ber.AppendLength(dst, len(content))
	return append(dst, content...)
}
