// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"os"
	"strings"
	"testing"
)

// TestRunVersionAfterOtherFlags runs the binary entry point with
// --version behind another flag and captures stdout.
func TestRunVersionAfterOtherFlags(t *testing.T) {
	savedArgs, savedStdout := os.Args, os.Stdout
	t.Cleanup(func() {
		os.Args = savedArgs
		os.Stdout = savedStdout
	})

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Args = []string{binaryName, "--no-color", "--version"}
	os.Stdout = writer

	runErr := run()
	writer.Close()
	os.Stdout = savedStdout

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if runErr != nil {
		t.Fatalf("run: %v", runErr)
	}
	if !strings.HasPrefix(string(output), binaryName+" ") {
		t.Errorf("output = %q, want version line for %s", output, binaryName)
	}
}
