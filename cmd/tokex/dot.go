package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
	"github.com/jorbDehmel/regex-to-dfa/graph"
	"github.com/jorbDehmel/regex-to-dfa/shorthand"
	"github.com/jorbDehmel/regex-to-dfa/tokex"
)

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot <pattern> [outfile]",
		Short: "Write the compiled automaton's GraphViz representation",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			noShorthand, _ := cmd.Flags().GetBool("no-shorthand")
			if !noShorthand {
				pattern = shorthand.New().Expand(pattern)
			}

			a := tokex.New[rune](alphabet.Char{})
			if err := a.Compile([]rune(pattern)); err != nil {
				return fmt.Errorf("compile %q: %w", pattern, err)
			}

			out := os.Stdout
			if len(args) == 2 {
				f, err := os.Create(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return graph.WriteDot(out, a.Entry(), pattern, func(r rune) string {
				return string(r)
			})
		},
	}
	return cmd
}
