package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/concepts"
	"github.com/abhisek/tutorcore/internal/engine"
	"github.com/abhisek/tutorcore/internal/placement"
	"github.com/abhisek/tutorcore/internal/store"
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Run an interactive placement diagnostic",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		grade, _ := cmd.Flags().GetInt("grade")
		goalID, _ := cmd.Flags().GetString("goal")

		if studentID == "" {
			return fmt.Errorf("--student is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc, err := engine.New(concepts.NewSeedCatalog(), st.MasteryRepo(), st.EventRepo(), nil)
		if err != nil {
			return err
		}

		search, err := svc.PlaceStudent(studentID, grade, goalID)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		for {
			node, ok := svc.NextDiagnosticProbe(search)
			if !ok {
				break
			}
			fmt.Printf("Can you solve: %s (grade %d)? [y/n] ", node.Title, node.GradeRank)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			correct := strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")

			search, err = svc.RecordDiagnosticAnswer(search, node.Code, correct)
			if err != nil {
				return err
			}
			if search.Status == placement.StatusComplete {
				break
			}
		}

		res, err := svc.FinalizePlacement(cmd.Context(), search)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

func printResult(res *placement.Result) {
	fmt.Println()
	fmt.Println(res.Summary)
	fmt.Printf("Recommended start: %s (%s)\n", res.RecommendedStart.Title, res.RecommendedStart.Code)
	if len(res.GapConcepts) > 0 {
		fmt.Println("Gaps to close first:")
		for _, code := range res.GapConcepts {
			fmt.Printf("  - %s\n", code)
		}
	}

	if len(res.SkillMap) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("%-26s  %-40s  %-18s  %s\n", "Concept", "Title", "Standing", "Hours")
	fmt.Println(strings.Repeat("─", 95))
	for _, e := range res.SkillMap {
		fmt.Printf("%-26s  %-40s  %-18s  %.1f\n",
			e.Concept.Code, truncate(e.Concept.Title, 40), string(e.Tag), e.EstimatedHours)
	}
	fmt.Printf("Estimated remaining effort: %.1f hours\n", res.EstimatedHours)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	placeCmd.Flags().String("student", "", "Student identifier")
	placeCmd.Flags().Int("grade", 3, "Student grade level (used to pick the first probe)")
	placeCmd.Flags().String("goal", "", "Restrict the diagnostic to a goal pack")
}
