// Package ber implements the ASN.1 Basic Encoding Rules primitives that the
// LDAPv3 codec is built from: tag bytes, definite-form lengths, and the
// handful of universal types RFC 4511 actually uses (BOOLEAN, INTEGER,
// ENUMERATED, OCTET STRING).
//
// Everything here is a free function operating on byte slices. There is no
// stateful encoder or decoder in this package — those live one layer up, in
// lengths, encode and decode, which compose these primitives into the
// LDAPMessage grammar. Indefinite-length encoding is not supported; LDAP
// never produces it and RFC 4511 §5.1 forbids it on the wire.
package ber
