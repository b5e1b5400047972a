package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorbDehmel/regex-to-dfa/alphabet"
	"github.com/jorbDehmel/regex-to-dfa/lexer"
	"github.com/jorbDehmel/regex-to-dfa/shorthand"
	"github.com/jorbDehmel/regex-to-dfa/tokex"
)

func newLexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex <pattern> <input>",
		Short: "Tokenize input by maximal munch against pattern",
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

			tokens, err := lexer.New(a).Tokenize([]rune(input))
			if err != nil {
				for _, tok := range tokens {
					fmt.Println(string(tok))
				}
				return fmt.Errorf("lex %q: %w", input, err)
			}

			for _, tok := range tokens {
				fmt.Println(string(tok))
			}
			return nil
		},
	}
	return cmd
}
