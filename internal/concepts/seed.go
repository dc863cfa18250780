package concepts

import (
	"fmt"
	"slices"
)

// seedConcepts defines the default curriculum slice, grades 1-6.
// Ordered by (grade rank, difficulty); Space construction re-verifies this.
var seedConcepts = []ConceptNode{
	// Grade 1
	{Code: "count-to-100", GradeRank: 1, Difficulty: 1, Title: "Counting to 100", Domain: DomainNumberPlace},
	{Code: "compare-numbers-20", GradeRank: 1, Difficulty: 2, Title: "Comparing numbers within 20", Domain: DomainNumberPlace},
	{Code: "add-within-20", GradeRank: 1, Difficulty: 2, Title: "Addition within 20", Domain: DomainAddSub},
	{Code: "sub-within-20", GradeRank: 1, Difficulty: 3, Title: "Subtraction within 20", Domain: DomainAddSub},
	{Code: "measure-lengths", GradeRank: 1, Difficulty: 3, Title: "Measuring lengths with units", Domain: DomainMeasurement},

	// Grade 2
	{Code: "place-value-3digit", GradeRank: 2, Difficulty: 2, Title: "Place value to hundreds", Domain: DomainNumberPlace},
	{Code: "add-within-100", GradeRank: 2, Difficulty: 3, Title: "Addition within 100", Domain: DomainAddSub},
	{Code: "sub-within-100", GradeRank: 2, Difficulty: 3, Title: "Subtraction within 100", Domain: DomainAddSub},
	{Code: "skip-counting", GradeRank: 2, Difficulty: 3, Title: "Skip counting by 2s, 5s, 10s", Domain: DomainMultDiv},
	{Code: "time-to-5min", GradeRank: 2, Difficulty: 4, Title: "Telling time to five minutes", Domain: DomainMeasurement},

	// Grade 3
	{Code: "round-to-10-100", GradeRank: 3, Difficulty: 3, Title: "Rounding to nearest 10 and 100", Domain: DomainNumberPlace},
	{Code: "add-sub-within-1000", GradeRank: 3, Difficulty: 4, Title: "Add and subtract within 1000", Domain: DomainAddSub},
	{Code: "mult-facts-10", GradeRank: 3, Difficulty: 4, Title: "Multiplication facts to 10x10", Domain: DomainMultDiv},
	{Code: "div-facts-10", GradeRank: 3, Difficulty: 5, Title: "Division facts to 100/10", Domain: DomainMultDiv},
	{Code: "fractions-unit", GradeRank: 3, Difficulty: 5, Title: "Unit fractions on a number line", Domain: DomainFractions},
	{Code: "area-rectangles", GradeRank: 3, Difficulty: 5, Title: "Area of rectangles", Domain: DomainMeasurement},

	// Grade 4
	{Code: "place-value-million", GradeRank: 4, Difficulty: 4, Title: "Place value to one million", Domain: DomainNumberPlace},
	{Code: "multi-digit-mult", GradeRank: 4, Difficulty: 5, Title: "Multi-digit multiplication", Domain: DomainMultDiv},
	{Code: "long-division-1digit", GradeRank: 4, Difficulty: 6, Title: "Division with one-digit divisors", Domain: DomainMultDiv},
	{Code: "equivalent-fractions", GradeRank: 4, Difficulty: 6, Title: "Equivalent fractions", Domain: DomainFractions},
	{Code: "fraction-add-like", GradeRank: 4, Difficulty: 6, Title: "Adding fractions with like denominators", Domain: DomainFractions},
	{Code: "angle-measurement", GradeRank: 4, Difficulty: 6, Title: "Measuring angles in degrees", Domain: DomainMeasurement},

	// Grade 5
	{Code: "decimal-place-value", GradeRank: 5, Difficulty: 5, Title: "Decimal place value to thousandths", Domain: DomainNumberPlace},
	{Code: "decimal-operations", GradeRank: 5, Difficulty: 6, Title: "Decimal addition and subtraction", Domain: DomainAddSub},
	{Code: "long-division-2digit", GradeRank: 5, Difficulty: 7, Title: "Division with two-digit divisors", Domain: DomainMultDiv},
	{Code: "fraction-add-unlike", GradeRank: 5, Difficulty: 7, Title: "Adding fractions with unlike denominators", Domain: DomainFractions},
	{Code: "fraction-mult", GradeRank: 5, Difficulty: 7, Title: "Multiplying fractions", Domain: DomainFractions},
	{Code: "volume-prisms", GradeRank: 5, Difficulty: 7, Title: "Volume of rectangular prisms", Domain: DomainMeasurement},

	// Grade 6
	{Code: "ratios-rates", GradeRank: 6, Difficulty: 7, Title: "Ratios and unit rates", Domain: DomainMultDiv},
	{Code: "fraction-division", GradeRank: 6, Difficulty: 8, Title: "Dividing fractions by fractions", Domain: DomainFractions},
	{Code: "negative-numbers", GradeRank: 6, Difficulty: 8, Title: "Negative numbers and the number line", Domain: DomainNumberPlace},
	{Code: "percent-of-quantity", GradeRank: 6, Difficulty: 8, Title: "Percent of a quantity", Domain: DomainFractions},
}

// seedGoalPacks maps goal IDs to their required concept codes. Each pack is
// a subset of seedConcepts; ordering comes from the curriculum, not the pack.
var seedGoalPacks = map[string][]string{
	"fractions-foundations": {
		"fractions-unit",
		"equivalent-fractions",
		"fraction-add-like",
		"fraction-add-unlike",
		"fraction-mult",
		"fraction-division",
	},
	"times-tables": {
		"skip-counting",
		"mult-facts-10",
		"div-facts-10",
		"multi-digit-mult",
	},
	"measurement-track": {
		"measure-lengths",
		"time-to-5min",
		"area-rectangles",
		"angle-measurement",
		"volume-prisms",
	},
}

// SeedCatalog is the built-in Catalog backed by the seeded curriculum.
// Additional goal packs can be registered (for example from JSON files);
// the seeded concept set itself is fixed.
type SeedCatalog struct {
	goals map[string]map[string]bool
}

// NewSeedCatalog returns a catalog over the seeded curriculum with the
// built-in goal packs registered.
func NewSeedCatalog() *SeedCatalog {
	c := &SeedCatalog{goals: make(map[string]map[string]bool, len(seedGoalPacks))}
	for id, codes := range seedGoalPacks {
		set := make(map[string]bool, len(codes))
		for _, code := range codes {
			set[code] = true
		}
		c.goals[id] = set
	}
	return c
}

// DefaultOrdering returns the full seeded curriculum in order.
func (c *SeedCatalog) DefaultOrdering() ([]ConceptNode, error) {
	return slices.Clone(seedConcepts), nil
}

// OrderedByGoal returns the goal's concepts in curriculum order.
func (c *SeedCatalog) OrderedByGoal(goalID string) ([]ConceptNode, error) {
	set, ok := c.goals[goalID]
	if !ok {
		return nil, &GoalNotFoundError{GoalID: goalID}
	}
	var nodes []ConceptNode
	for _, n := range seedConcepts {
		if set[n.Code] {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// GoalIDs returns all registered goal IDs, sorted.
func (c *SeedCatalog) GoalIDs() []string {
	ids := make([]string, 0, len(c.goals))
	for id := range c.goals {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// RegisterGoalPack adds or replaces a goal pack. Every referenced code must
// exist in the curriculum; an unknown code is a configuration error, never
// silently dropped.
func (c *SeedCatalog) RegisterGoalPack(pack GoalPack) error {
	if pack.ID == "" {
		return fmt.Errorf("goal pack: empty id")
	}
	set := make(map[string]bool, len(pack.Concepts))
	for _, code := range pack.Concepts {
		if !seedHasCode(code) {
			return fmt.Errorf("goal pack %q: unknown concept %q", pack.ID, code)
		}
		set[code] = true
	}
	c.goals[pack.ID] = set
	return nil
}

func seedHasCode(code string) bool {
	for _, n := range seedConcepts {
		if n.Code == code {
			return true
		}
	}
	return false
}
