package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootPrompts(t *testing.T) {
	out, _, err := execute(t, "10\n")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "Enter password length (minimum 8): Generated password: ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRootLengthFlag(t *testing.T) {
	out, _, err := execute(t, "", "--length", "12")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if strings.Contains(out, "Enter password length") {
		t.Errorf("prompt should be skipped with --length, got %q", out)
	}
	if !strings.HasSuffix(out, "Password meets complexity requirements: Yes\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRootInvalidLength(t *testing.T) {
	_, errOut, err := execute(t, "", "-l", "7")

	var code exitCode
	if !errors.As(err, &code) || code != 1 {
		t.Fatalf("Execute() error = %v, want exit code 1", err)
	}
	if errOut != "Error: Password length must be at least 8 characters\n" {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestCheckCommand(t *testing.T) {
	out, _, err := execute(t, "", "check", "aA1!", "aaaa")

	var code exitCode
	if !errors.As(err, &code) || code != 1 {
		t.Fatalf("Execute() error = %v, want exit code 1", err)
	}
	if out != "aA1!: Yes\naaaa: No\n" {
		t.Errorf("output = %q", out)
	}

	if _, _, err := execute(t, "", "check", "aA1 "); err != nil {
		t.Errorf("strong password should exit 0, got %v", err)
	}
}
