package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var unbindPDU = []byte{0x30, 0x05, 0x02, 0x01, 0x01, 0x42, 0x00}

func writeTempPDU(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pdu.bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write test PDU: %v", err)
	}
	return path
}

func TestRun_NoArgs(t *testing.T) {
	exitCode := run([]string{"ldapcodec-dump"})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for no args, got %d", exitCode)
	}
}

func TestRun_Help(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"help command", []string{"ldapcodec-dump", "help"}},
		{"short flag", []string{"ldapcodec-dump", "-h"}},
		{"long flag", []string{"ldapcodec-dump", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode := run(tt.args)
			if exitCode != 0 {
				t.Errorf("expected exit code 0 for help, got %d", exitCode)
			}
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	exitCode := run([]string{"ldapcodec-dump", "unknown"})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for unknown command, got %d", exitCode)
	}
}

func TestRun_Dump(t *testing.T) {
	path := writeTempPDU(t, unbindPDU)
	exitCode := run([]string{"ldapcodec-dump", "dump", path})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for dump, got %d", exitCode)
	}
}

func TestRun_DumpMissingFile(t *testing.T) {
	exitCode := run([]string{"ldapcodec-dump", "dump"})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for dump without a file, got %d", exitCode)
	}
}

func TestRun_DumpTrailingGarbage(t *testing.T) {
	path := writeTempPDU(t, append(append([]byte{}, unbindPDU...), 0x01))
	exitCode := run([]string{"ldapcodec-dump", "dump", path})
	if exitCode != 1 {
		t.Errorf("expected exit code 1 for trailing garbage, got %d", exitCode)
	}
}

func TestRun_DumpHelp(t *testing.T) {
	exitCode := run([]string{"ldapcodec-dump", "dump", "-h"})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for dump help, got %d", exitCode)
	}
}

func TestRun_Verify(t *testing.T) {
	path := writeTempPDU(t, unbindPDU)
	exitCode := run([]string{"ldapcodec-dump", "verify", path})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for verify, got %d", exitCode)
	}
}

func TestRun_VerifyHelp(t *testing.T) {
	exitCode := run([]string{"ldapcodec-dump", "verify", "-h"})
	if exitCode != 0 {
		t.Errorf("expected exit code 0 for verify help, got %d", exitCode)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)

	output := buf.String()
	expectedStrings := []string{
		"ldapcodec-dump",
		"Usage:",
		"Commands:",
		"dump",
		"verify",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("expected usage to contain %q", expected)
		}
	}
}

func TestPrintDumpUsage(t *testing.T) {
	var buf bytes.Buffer
	printDumpUsage(&buf)

	if !strings.Contains(buf.String(), "-max-pdu") {
		t.Error("expected dump usage to contain -max-pdu")
	}
}

func TestPrintVerifyUsage(t *testing.T) {
	var buf bytes.Buffer
	printVerifyUsage(&buf)

	if !strings.Contains(buf.String(), "-max-pdu") {
		t.Error("expected verify usage to contain -max-pdu")
	}
}
