package concepts

import "fmt"

// Catalog exposes the concept graph store as a query interface.
// Implementations must return concepts already sorted by
// (grade rank, difficulty); Space constructors verify this.
type Catalog interface {
	// DefaultOrdering returns the full default curriculum slice in order.
	DefaultOrdering() ([]ConceptNode, error)

	// OrderedByGoal returns the ordered concepts required by a goal.
	// Returns *GoalNotFoundError for an unknown goal.
	OrderedByGoal(goalID string) ([]ConceptNode, error)
}

// GoalNotFoundError indicates a goal ID the catalog has never heard of.
type GoalNotFoundError struct {
	GoalID string
}

func (e *GoalNotFoundError) Error() string {
	return fmt.Sprintf("goal not found: %q", e.GoalID)
}

// EmptyGoalError indicates a goal that exists but requires zero concepts.
// A diagnostic cannot start from it; no partial state is created.
type EmptyGoalError struct {
	GoalID string
}

func (e *EmptyGoalError) Error() string {
	return fmt.Sprintf("goal %q has no required concepts", e.GoalID)
}
