package decode

import (
	"errors"
	"fmt"
)

// ErrNeedMoreData signals that buf does not yet hold a complete message;
// the caller should Feed more bytes and retry. It is not a protocol error.
var ErrNeedMoreData = errors.New("decode: need more data")

// ErrTruncatedContainer signals a TLV whose declared length runs past the
// end of its enclosing, already-fully-buffered TLV (for example an inner
// element inside the outer LDAPMessage SEQUENCE once the SEQUENCE's own
// declared length has been fully read). Unlike ErrNeedMoreData this is
// fatal: the bytes that would complete this TLV are never coming, because
// the parent has already told us where it ends.
var ErrTruncatedContainer = errors.New("decode: inner element exceeds its enclosing container's declared length")

// ErrMaxPDUExceeded is returned once a message's declared outer SEQUENCE
// length exceeds config.Options.MaxPDUSize.
var ErrMaxPDUExceeded = errors.New("decode: message exceeds configured MaxPDUSize")

// ErrUnsupportedOperation is returned when the top-level protocolOp CHOICE
// tag does not match any of the 21 known operations.
var ErrUnsupportedOperation = errors.New("decode: unrecognized protocolOp tag")

// Error wraps a decode failure with the byte offset, relative to the start
// of the message currently being decoded, of the envelope element (outer
// header, message ID, protocolOp or controls) whose decoding failed.
type Error struct {
	Offset int
	Op     string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("decode: %s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
