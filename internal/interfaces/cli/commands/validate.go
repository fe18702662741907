package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/service/rules"
	"github.com/rulemd/rulemd/pkg/rulemd"
)

// NewValidateCommand builds the `validate` command: construct the
// parser and output engine over the compiled-in rule table and report
// every fatal or non-fatal configuration problem the construction
// surfaces (a missing "Array" joiner rule is fatal; a rule excluded
// from dispatch for a non-numeric order is a warning). A Go program
// embedding a custom table built with pkg/rulemd.ParserFor/OutputFor
// hits the same two checks; this command exists so that configuration
// mistake is visible before it ever reaches a parse call.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the rule dispatch table's configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := rules.BuildDefaultRules()

			parser := rulemd.ParserFor(table)
			for _, w := range parser.Warnings() {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}

			outputResult := rulemd.OutputFor(table)
			if outputResult.IsErr() {
				return fmt.Errorf("validate: %w", outputResult.Error())
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	return cmd
}
