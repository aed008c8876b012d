package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vaultpass/pwgen-go/internal/cli"
)

func newRootCmd() *cobra.Command {
	var length int

	root := &cobra.Command{
		Use:   "pwgen",
		Short: "Generate a random password with lowercase, uppercase, digit and special characters",
		Long: `pwgen prompts for a password length (minimum 8), prints a random
password of that length and confirms it meets the complexity policy.
Use --length to skip the prompt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var code int
			if cmd.Flags().Changed("length") {
				code = cli.Generate(cmd.OutOrStdout(), cmd.ErrOrStderr(), length)
			} else {
				code = cli.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return result(code)
		},
	}
	root.Flags().IntVarP(&length, "length", "l", 0, "password length; prompts when unset")

	root.AddCommand(&cobra.Command{
		Use:   "check PASSWORD...",
		Short: "Report whether each password meets the complexity policy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return result(cli.Check(cmd.OutOrStdout(), args))
		},
	})

	return root
}

type exitCode int

func (c exitCode) Error() string { return "exit status " + strconv.Itoa(int(c)) }

// result turns a shell exit code into the error cobra propagates.
func result(code int) error {
	if code == 0 {
		return nil
	}
	return exitCode(code)
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if code, ok := err.(exitCode); ok {
		os.Exit(int(code))
	}
	os.Stderr.WriteString("Error: " + err.Error() + "\n")
	os.Exit(1)
}
