package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a student's mastery records",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
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

		recs, err := st.MasteryRepo().ListByStudent(cmd.Context(), studentID)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Printf("No mastery records for student %q\n", studentID)
			return nil
		}

		fmt.Printf("%-26s  %-11s  %6s  %9s  %8s  %s\n",
			"Concept", "Level", "P", "Attempts", "Interval", "Next review")
		fmt.Println(strings.Repeat("─", 85))
		for _, r := range recs {
			next := "-"
			if r.NextReviewAt != nil {
				next = r.NextReviewAt.Format(time.DateOnly)
			}
			fmt.Printf("%-26s  %-11s  %6.2f  %4d/%-4d  %7dd  %s\n",
				r.ConceptID, r.Level, r.Probability,
				r.CorrectCount, r.PracticeCount, r.ReviewInterval, next)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("student", "", "Student identifier")
}
