// Command ldapcodec-dump decodes a file of concatenated BER-encoded
// LDAPMessage PDUs and prints one line per message.
package main

import (
	"fmt"
	"os"
)

func main() {
	exitCode := run(os.Args)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code. Separated from main()
// to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stdout)
		return 1
	}

	switch args[1] {
	case "dump":
		return dumpCmd(args[2:])
	case "verify":
		return verifyCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[1])
		fmt.Fprintln(os.Stderr, "Run 'ldapcodec-dump help' for usage.")
		return 1
	}
}
