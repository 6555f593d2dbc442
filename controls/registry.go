// Package controls is a process-wide registry mapping control OIDs to
// codecs that decode a Control's opaque Value into a structured
// message.ControlValue, the same registration pattern the teacher uses for
// pluggable backends (internal/backend's driver registry).
package controls

import (
	"fmt"
	"sync"

	"github.com/oba-ldap/ldapcodec/message"
)

// Well-known control OIDs this package registers a codec for out of the
// box.
const (
	OIDPagedResults  = "1.2.840.113556.1.4.319"
	OIDDontUseCopy   = "1.3.6.1.1.22"
)

// Codec decodes a control's raw value into a message.ControlValue. Turning
// a ControlValue back into raw bytes is the ControlValue's own EncodeValue
// method, not part of Codec.
type Codec interface {
	Decode(value []byte) (message.ControlValue, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]Codec{}
)

func init() {
	Register(OIDPagedResults, pagedResultsCodec{})
	Register(OIDDontUseCopy, dontUseCopyCodec{})
}

// Register installs codec for oid, replacing any existing registration.
// Safe for concurrent use.
func Register(oid string, codec Codec) {
	mu.Lock()
	defer mu.Unlock()
	registry[oid] = codec
}

// Lookup returns the codec registered for oid, if any.
func Lookup(oid string) (Codec, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[oid]
	return c, ok
}

// Decode populates c.Decoded using the codec registered for c.OID, if any.
// An unknown OID is not an error: c.Value keeps the raw bytes and
// c.Decoded stays nil, satisfying the unknown-control round-trip
// requirement.
func Decode(c *message.Control) error {
	if !c.HasValue {
		return nil
	}
	codec, ok := Lookup(c.OID)
	if !ok {
		return nil
	}
	v, err := codec.Decode(c.Value)
	if err != nil {
		return fmt.Errorf("controls: decoding %s: %w", c.OID, err)
	}
	c.Decoded = v
	return nil
}
