package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oba-ldap/ldapcodec/config"
	"github.com/oba-ldap/ldapcodec/decode"
)

// dumpCmd implements "ldapcodec-dump dump".
func dumpCmd(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	maxPDU := fs.Uint("max-pdu", uint(config.Default().MaxPDUSize), "maximum accepted PDU size in bytes")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		printDumpUsage(os.Stdout)
		return 0
	}
	if fs.NArg() != 1 {
		printDumpUsage(os.Stderr)
		return 1
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ldapcodec-dump: %v\n", err)
		return 1
	}

	cfg := config.Default()
	cfg.MaxPDUSize = uint32(*maxPDU)
	c := decode.NewContainer(cfg)
	c.Feed(data)

	count := 0
	for {
		m, ok, err := c.NextMessage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ldapcodec-dump: decode failed after %d message(s): %v\n", count, err)
			return 1
		}
		if !ok {
			break
		}
		count++
		fmt.Printf("message %d: id=%d op=%s controls=%d\n", count, m.ID, m.OperationType(), m.Controls.Len())
	}

	if c.Pending() > 0 {
		fmt.Fprintf(os.Stderr, "ldapcodec-dump: %d trailing byte(s) do not form a complete message\n", c.Pending())
		return 1
	}
	return 0
}
