package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/concepts"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Browse the concept catalog",
}

var conceptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List concepts (optionally filtered by domain or grade)",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		grade, _ := cmd.Flags().GetInt("grade")

		cat := concepts.NewSeedCatalog()
		nodes, err := cat.DefaultOrdering()
		if err != nil {
			return err
		}

		var filtered []concepts.ConceptNode
		for _, n := range nodes {
			if domain != "" && n.Domain != concepts.Domain(domain) {
				continue
			}
			if grade != 0 && n.GradeRank != grade {
				continue
			}
			filtered = append(filtered, n)
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no concepts match the given filters")
		}

		fmt.Printf("%-26s  %-44s  %5s  %4s  %s\n", "Code", "Title", "Grade", "Diff", "Domain")
		fmt.Println(strings.Repeat("─", 110))
		for _, n := range filtered {
			fmt.Printf("%-26s  %-44s  %5d  %4d  %s\n",
				n.Code, truncate(n.Title, 44), n.GradeRank, n.Difficulty,
				concepts.DomainDisplayName(n.Domain))
		}
		return nil
	},
}

var conceptsGoalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List available goal packs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := concepts.NewSeedCatalog()
		for _, id := range cat.GoalIDs() {
			nodes, err := cat.OrderedByGoal(id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d concepts)\n", id, len(nodes))
			for _, n := range nodes {
				fmt.Printf("  - %s\n", n.Code)
			}
		}
		return nil
	},
}

func init() {
	conceptsListCmd.Flags().String("domain", "", "Filter by domain")
	conceptsListCmd.Flags().Int("grade", 0, "Filter by grade rank")

	conceptsCmd.AddCommand(conceptsListCmd)
	conceptsCmd.AddCommand(conceptsGoalsCmd)
}
