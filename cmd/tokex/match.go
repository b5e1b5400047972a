package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
	"github.com/jorbDehmel/regex-to-dfa/shorthand"
	"github.com/jorbDehmel/regex-to-dfa/tokex"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Report whether input matches pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, input := args[0], args[1]

			noShorthand, _ := cmd.Flags().GetBool("no-shorthand")
			if !noShorthand {
				pattern = shorthand.New().Expand(pattern)
			}

			a := tokex.New[rune](alphabet.Char{})
			if err := a.Compile([]rune(pattern)); err != nil {
				return fmt.Errorf("compile %q: %w", pattern, err)
			}

			fmt.Println(a.Match([]rune(input)))
			return nil
		},
	}
	return cmd
}
