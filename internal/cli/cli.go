// Package cli implements the interactive password generator shell: it reads
// a length, prints a generated password and confirms its strength.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vaultpass/pwgen-go/internal/crypto"
)

const Prompt = "Enter password length (minimum 8): "

var ErrInvalidInput = errors.New("invalid input")

// Run prompts on out, reads a length from in and reports the result. It
// returns the process exit code.
func Run(in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, Prompt)

	length, err := ReadLength(in)
	if err != nil {
		return fail(errOut, err)
	}
	return Generate(out, errOut, length)
}

// ReadLength reads one whitespace-delimited token from in and parses it as
// a base-10 integer.
func ReadLength(in io.Reader) (int, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return 0, ErrInvalidInput
	}

	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, sc.Text())
	}
	return n, nil
}

// Generate prints a password of the given length and its strength verdict.
func Generate(out, errOut io.Writer, length int) int {
	password, err := crypto.Generate(length)
	if err != nil {
		return fail(errOut, err)
	}

	fmt.Fprintf(out, "Generated password: %s\n", password)
	fmt.Fprintf(out, "Password meets complexity requirements: %s\n", yesNo(crypto.IsStrong(password)))
	return 0
}

// Check prints a verdict for each password and returns 1 if any is weak.
func Check(out io.Writer, passwords []string) int {
	code := 0
	for _, p := range passwords {
		strong := crypto.IsStrong(p)
		if !strong {
			code = 1
		}
		fmt.Fprintf(out, "%s: %s\n", p, yesNo(strong))
	}
	return code
}

func fail(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		fmt.Fprintln(errOut, "Error: Invalid input. Please enter a number.")
	case errors.Is(err, crypto.ErrInvalidLength):
		fmt.Fprintln(errOut, "Error: Password length must be at least 8 characters")
	default:
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return 1
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
