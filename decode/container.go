package decode

import (
	"github.com/oba-ldap/ldapcodec/config"
	"github.com/oba-ldap/ldapcodec/logging"
	"github.com/oba-ldap/ldapcodec/message"
)

// Container is a stream accumulator: bytes arrive in arbitrary fragments
// via Feed, and NextMessage drains any complete LDAPMessage PDUs that have
// accumulated. It is the streaming counterpart to the one-shot
// DecodeMessage — a connection handler calls Feed once per Read and
// NextMessage in a loop until it returns false.
//
// Container buffers whatever bytes haven't yet formed a complete message;
// it never re-parses a message it has already returned. After a message is
// taken, if the still-pending bytes fill less than half of the capacity
// left from the read position, they are copied into a fresh, exactly sized
// buffer that no longer holds the consumed prefix, keeping steady-state
// memory bounded to roughly one PDU's worth of overhead rather than
// growing with total bytes ever fed.
type Container struct {
	cfg   config.Options
	buf   []byte
	log   logging.Logger
	fatal error
}

// NewContainer returns a Container using cfg for every message it decodes.
// Tracing is silent (logging.NewNop) until WithLogger is called.
func NewContainer(cfg config.Options) *Container {
	return &Container{cfg: cfg, log: logging.NewNop()}
}

// WithLogger attaches a logger that receives one Debug event per decoded
// message (ID, operation type, byte length). Opt-in; most callers never
// need this.
func (c *Container) WithLogger(l logging.Logger) *Container {
	c.log = l
	return c
}

// Feed appends data to the container's internal buffer. Once a fatal
// decode error has poisoned the container (see NextMessage), Feed is a
// no-op: no amount of further input can make a malformed PDU well-formed.
func (c *Container) Feed(data []byte) {
	if c.fatal != nil {
		return
	}
	c.buf = append(c.buf, data...)
}

// NextMessage attempts to decode one complete LDAPMessage from the front
// of the buffered bytes. ok is false when the buffer holds no complete
// message yet (not an error: Feed more and call again). A non-nil error is
// a genuine protocol violation: it poisons the Container. From then on
// Feed discards its input (Feed has no return value, so it reports
// nothing), and every subsequent NextMessage call returns that same error
// without attempting to decode anything further.
func (c *Container) NextMessage() (m *message.Message, ok bool, err error) {
	if c.fatal != nil {
		return nil, false, c.fatal
	}
	if len(c.buf) == 0 {
		return nil, false, nil
	}
	m, n, err := DecodeMessage(c.buf, c.cfg)
	if err == ErrNeedMoreData {
		return nil, false, nil
	}
	if err != nil {
		c.fatal = err
		return nil, false, err
	}
	c.buf = c.buf[n:]
	if len(c.buf) > 0 && cap(c.buf) > 2*len(c.buf) {
		compacted := make([]byte, len(c.buf))
		copy(compacted, c.buf)
		c.buf = compacted
	}
	c.log.Debug("decoded message", "id", m.ID, "op", m.OperationType().String(), "bytes", n)
	return m, true, nil
}

// Pending returns the number of unconsumed, not-yet-a-complete-message
// bytes currently buffered.
func (c *Container) Pending() int { return len(c.buf) }
