// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jshape checks that its input conforms to the JSON object grammar.
// It exits 0 if the document conforms, 1 if it does not, and 2 on usage or
// I/O errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"

	"github.com/cstroik/jshape"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jshape [file]",
		Short: "Check that a document conforms to the JSON object grammar",
		Long: `Check that a document conforms to the JSON object grammar.

With no file argument, or with "-", the document is read from stdin.
The check recognizes shape only; it does not decode values.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			if relaxed, _ := cmd.Flags().GetBool("relaxed"); relaxed {
				// Standardize JWCC (comments, trailing commas) to plain
				// JSON before checking.
				data, err = hujson.Standardize(data)
				if err != nil {
					return err
				}
			}
			if err := jshape.Validate(string(data)); err != nil {
				fmt.Fprintln(os.Stderr, "invalid:", err)
				os.Exit(1)
			}
			fmt.Println("valid")
			return nil
		},
	}
	rootCmd.Flags().Bool("relaxed", false, "standardize comments and trailing commas before checking")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
