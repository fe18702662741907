package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulemd/rulemd/internal/app/service/rules"
)

// NewRulesCommand builds the `rules` command: list every rule in the
// compiled-in default table, in dispatch order, annotated with whether
// the resolved configuration enables it.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the active rule dispatch table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return fmt.Errorf("rules: %w", err)
			}

			table := rules.BuildDefaultRules()
			for _, name := range table.SortedRuleNames() {
				status := "enabled"
				if !cfg.RuleEnabled(name) {
					status = "disabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, status)
			}
			return nil
		},
	}

	return cmd
}
