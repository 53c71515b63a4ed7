package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphol-dev/grapholint/internal/profiles"
)

// profilesCmd lists the available validation profiles.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available validation profiles",
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, t := range profiles.Types {
			p, err := profiles.New(t)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s %s (%d edge rules, %d node rules)\n",
				shortName(t), t, len(p.EdgeRules()), len(p.NodeRules()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func shortName(t profiles.Type) string {
	switch t {
	case profiles.OWL2QL:
		return "owl2ql"
	case profiles.OWL2RL:
		return "owl2rl"
	default:
		return "owl2"
	}
}
