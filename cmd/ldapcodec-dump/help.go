package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `ldapcodec-dump - inspect BER-encoded LDAPv3 PDUs

Usage:
  ldapcodec-dump <command> [options]

Commands:
  dump        Decode and print every message in a PDU file
  verify      Decode then re-encode, reporting any byte mismatch

Use "ldapcodec-dump <command> -h" for more information about a command.
`)
}

// printDumpUsage prints the dump command usage.
func printDumpUsage(w io.Writer) {
	fmt.Fprint(w, `Decode and print every message in a PDU file

Usage:
  ldapcodec-dump dump [options] <file>

Options:
  -max-pdu uint
        Maximum accepted PDU size in bytes (default 2097152)
  -h, -help
        Show this help message
`)
}

// printVerifyUsage prints the verify command usage.
func printVerifyUsage(w io.Writer) {
	fmt.Fprint(w, `Decode then re-encode every message, reporting any byte mismatch

Usage:
  ldapcodec-dump verify [options] <file>

Options:
  -max-pdu uint
        Maximum accepted PDU size in bytes (default 2097152)
  -h, -help
        Show this help message
`)
}
