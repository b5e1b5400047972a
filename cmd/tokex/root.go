package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tokex",
		Short: "Compile and run tokex patterns against a character stream",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := loadConfig(); err != nil {
				return err
			}
			slog.Debug("config loaded")
			return nil
		},
	}

	root.PersistentFlags().Bool("no-shorthand", false, "disable \\d, \\w, \\s expansion before compiling")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newLexCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("tokex failed", "error", err)
		os.Exit(1)
	}
}
