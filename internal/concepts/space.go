package concepts

import (
	"fmt"
	"slices"
)

// Space is an immutable index-addressable sequence of concepts, strictly
// sorted by (grade rank, difficulty). A diagnostic session builds one Space
// up front and binary-searches over it; the Space never changes afterwards.
type Space struct {
	nodes []ConceptNode
	index map[string]int
}

// NewSpace builds a Space from an ordered concept list. It rejects empty
// input, duplicate codes, out-of-range difficulty, and any pair of adjacent
// nodes that violates the (grade rank, difficulty) sort order.
func NewSpace(nodes []ConceptNode) (*Space, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("concept space: no concepts")
	}

	s := &Space{
		nodes: slices.Clone(nodes),
		index: make(map[string]int, len(nodes)),
	}

	for i, n := range s.nodes {
		if n.Code == "" {
			return nil, fmt.Errorf("concept space: empty code at index %d", i)
		}
		if n.Difficulty < 1 || n.Difficulty > 10 {
			return nil, fmt.Errorf("concept space: %q difficulty %d out of range 1-10", n.Code, n.Difficulty)
		}
		if _, dup := s.index[n.Code]; dup {
			return nil, fmt.Errorf("concept space: duplicate code %q", n.Code)
		}
		s.index[n.Code] = i

		if i == 0 {
			continue
		}
		prev := s.nodes[i-1]
		if n.GradeRank < prev.GradeRank ||
			(n.GradeRank == prev.GradeRank && n.Difficulty < prev.Difficulty) {
			return nil, fmt.Errorf("concept space: %q out of order after %q", n.Code, prev.Code)
		}
	}

	return s, nil
}

// Len returns the number of concepts in the space.
func (s *Space) Len() int {
	return len(s.nodes)
}

// At returns the concept at index i. Panics if i is out of range, like a
// slice access; callers obtain indices from the space itself.
func (s *Space) At(i int) ConceptNode {
	return s.nodes[i]
}

// IndexOf returns the index of the concept with the given code.
func (s *Space) IndexOf(code string) (int, bool) {
	i, ok := s.index[code]
	return i, ok
}

// Nodes returns a copy of all concepts in order.
func (s *Space) Nodes() []ConceptNode {
	return slices.Clone(s.nodes)
}

// FirstIndexAtGrade returns the index of the first concept whose grade rank
// is at least the given grade. Falls back to the last index when the grade
// is above everything in the space.
func (s *Space) FirstIndexAtGrade(grade int) int {
	for i, n := range s.nodes {
		if n.GradeRank >= grade {
			return i
		}
	}
	return len(s.nodes) - 1
}

// DefaultSpace builds a Space from the catalog's default curriculum ordering.
func DefaultSpace(cat Catalog) (*Space, error) {
	nodes, err := cat.DefaultOrdering()
	if err != nil {
		return nil, fmt.Errorf("default ordering: %w", err)
	}
	return NewSpace(nodes)
}

// GoalSpace builds a Space restricted to a goal's required concepts.
// Returns *EmptyGoalError when the goal resolves to zero concepts.
func GoalSpace(cat Catalog, goalID string) (*Space, error) {
	nodes, err := cat.OrderedByGoal(goalID)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &EmptyGoalError{GoalID: goalID}
	}
	return NewSpace(nodes)
}
