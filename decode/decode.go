// Package decode parses a BER-encoded LDAPMessage envelope: the outer
// SEQUENCE, the message ID, the protocolOp CHOICE (dispatched by
// APPLICATION tag to the matching message.DecodeXxx function) and the
// optional [0] Controls. Each operation's own grammar lives beside its
// type in package message; this package owns only the envelope and the
// buffering needed to tolerate a PDU arriving across several reads
// (Container, in container.go).
package decode

import (
	"github.com/oba-ldap/ldapcodec/ber"
	"github.com/oba-ldap/ldapcodec/config"
	"github.com/oba-ldap/ldapcodec/message"
)

type rawTLV struct {
	tag      ber.Tag
	content  []byte
	consumed int
}

// readRawTLV reads one tag-length-value unit from b. It is only ever called
// on a slice already known to be fully present (the outer LDAPMessage body,
// or what remains of it after a prior field), so a length that runs past
// the end of b here is a malformed PDU, not a sign that more bytes are on
// the way: it returns ErrTruncatedContainer, never ErrNeedMoreData.
func readRawTLV(b []byte) (rawTLV, error) {
	tag, err := ber.DecodeTag(b)
	if err != nil {
		return rawTLV{}, err
	}
	length, n, err := ber.DecodeLength(b[1:])
	if err != nil {
		if err == ber.ErrTruncated {
			return rawTLV{}, ErrTruncatedContainer
		}
		return rawTLV{}, err
	}
	start := 1 + n
	if length > len(b)-start {
		return rawTLV{}, ErrTruncatedContainer
	}
	return rawTLV{tag: tag, content: b[start : start+length], consumed: start + length}, nil
}

// DecodeMessage decodes exactly one LDAPMessage from the start of buf,
// returning the message and the number of bytes consumed. It returns
// ErrNeedMoreData (not a fatal error) when buf holds an incomplete header
// or body; the caller should retry once more bytes are available.
func DecodeMessage(buf []byte, cfg config.Options) (*message.Message, int, error) {
	if len(buf) < 2 {
		return nil, 0, ErrNeedMoreData
	}
	tag, err := ber.DecodeTag(buf)
	if err != nil {
		return nil, 0, err
	}
	if tag.Class != ber.ClassUniversal || tag.Number != ber.TagSequence || !tag.Constructed {
		return nil, 0, &Error{Op: "envelope", Err: &ber.TagMismatchError{
			Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagSequence, Constructed: true},
			Actual:   tag,
		}}
	}
	bodyLen, n, err := ber.DecodeLength(buf[1:])
	if err != nil {
		if err == ber.ErrTruncated {
			return nil, 0, ErrNeedMoreData
		}
		return nil, 0, &Error{Op: "envelope length", Err: err}
	}
	if cfg.MaxPDUSize > 0 && uint32(bodyLen) > cfg.MaxPDUSize {
		return nil, 0, &Error{Op: "envelope length", Err: ErrMaxPDUExceeded}
	}
	headerLen := 1 + n
	if bodyLen > len(buf)-headerLen {
		return nil, 0, ErrNeedMoreData
	}
	body := buf[headerLen : headerLen+bodyLen]
	total := headerLen + bodyLen

	m, err := decodeBody(body, cfg)
	if err != nil {
		if de, ok := err.(*Error); ok {
			de.Offset += headerLen
		}
		return nil, 0, err
	}
	return m, total, nil
}

func decodeBody(body []byte, cfg config.Options) (*message.Message, error) {
	idTLV, err := readRawTLV(body)
	if err != nil {
		return nil, &Error{Op: "messageID", Err: err}
	}
	if idTLV.tag.Class != ber.ClassUniversal || idTLV.tag.Number != ber.TagInteger {
		return nil, &Error{Op: "messageID", Err: &ber.TagMismatchError{
			Expected: ber.Tag{Class: ber.ClassUniversal, Number: ber.TagInteger}, Actual: idTLV.tag}}
	}
	id, err := ber.DecodeInteger(idTLV.content)
	if err != nil {
		return nil, &Error{Op: "messageID", Err: err}
	}
	rest := body[idTLV.consumed:]
	opOffset := idTLV.consumed

	opTLV, err := readRawTLV(rest)
	if err != nil {
		return nil, &Error{Offset: opOffset, Op: "protocolOp", Err: err}
	}
	if opTLV.tag.Class != ber.ClassApplication {
		return nil, &Error{Offset: opOffset, Op: "protocolOp", Err: &ber.TagMismatchError{
			Expected: ber.Tag{Class: ber.ClassApplication}, Actual: opTLV.tag}}
	}
	op, err := decodeOp(opTLV.tag.Number, opTLV.content, cfg.StrictStringValidation)
	if err != nil {
		return nil, &Error{Offset: opOffset, Op: "protocolOp", Err: err}
	}
	rest = rest[opTLV.consumed:]
	ctrlOffset := opOffset + opTLV.consumed

	m := message.NewMessage(int32(id), op)
	if len(rest) > 0 {
		ctrlTLV, err := readRawTLV(rest)
		if err != nil {
			return nil, &Error{Offset: ctrlOffset, Op: "controls", Err: err}
		}
		if ctrlTLV.tag.Class != ber.ClassContextSpecific || ctrlTLV.tag.Number != message.ContextTagControls {
			return nil, &Error{Offset: ctrlOffset, Op: "controls", Err: &ber.TagMismatchError{
				Expected: ber.Tag{Class: ber.ClassContextSpecific, Number: message.ContextTagControls},
				Actual:   ctrlTLV.tag}}
		}
		controls, err := message.DecodeControlList(ctrlTLV.content, cfg.StrictStringValidation)
		if err != nil {
			return nil, &Error{Offset: ctrlOffset, Op: "controls", Err: err}
		}
		m.Controls = controls
	}
	return m, nil
}

// decodeOp dispatches a protocolOp APPLICATION tag number to the matching
// message.DecodeXxx function.
func decodeOp(tagNumber int, content []byte, strict bool) (message.ProtocolOp, error) {
	switch tagNumber {
	case message.TagBindRequest:
		return message.DecodeBindRequest(content, strict)
	case message.TagBindResponse:
		return message.DecodeBindResponse(content, strict)
	case message.TagUnbindRequest:
		r, err := message.DecodeUnbindRequest(content)
		if err != nil {
			return nil, err
		}
		return r, nil
	case message.TagSearchRequest:
		return message.DecodeSearchRequest(content, strict)
	case message.TagSearchResultEntry:
		return message.DecodeSearchResultEntry(content, strict)
	case message.TagSearchResultDone:
		return message.DecodeSearchResultDone(content, strict)
	case message.TagModifyRequest:
		return message.DecodeModifyRequest(content, strict)
	case message.TagModifyResponse:
		return message.DecodeModifyResponse(content, strict)
	case message.TagAddRequest:
		return message.DecodeAddRequest(content, strict)
	case message.TagAddResponse:
		return message.DecodeAddResponse(content, strict)
	case message.TagDelRequest:
		return message.DecodeDeleteRequest(content, strict)
	case message.TagDelResponse:
		return message.DecodeDeleteResponse(content, strict)
	case message.TagModifyDNRequest:
		return message.DecodeModifyDNRequest(content, strict)
	case message.TagModifyDNResponse:
		return message.DecodeModifyDNResponse(content, strict)
	case message.TagCompareRequest:
		return message.DecodeCompareRequest(content, strict)
	case message.TagCompareResponse:
		return message.DecodeCompareResponse(content, strict)
	case message.TagAbandonRequest:
		return message.DecodeAbandonRequest(content)
	case message.TagSearchResultReference:
		return message.DecodeSearchResultReference(content, strict)
	case message.TagExtendedRequest:
		return message.DecodeExtendedRequest(content, strict)
	case message.TagExtendedResponse:
		return message.DecodeExtendedResponse(content, strict)
	case message.TagIntermediateResponse:
		return message.DecodeIntermediateResponse(content, strict)
	default:
		return nil, ErrUnsupportedOperation
	}
}
