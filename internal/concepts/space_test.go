package concepts

import (
	"errors"
	"testing"
)

func TestNewSpace_RejectsBadInput(t *testing.T) {
	base := ConceptNode{Code: "a", GradeRank: 1, Difficulty: 2, Title: "A", Domain: DomainAddSub}

	tests := []struct {
		name  string
		nodes []ConceptNode
	}{
		{"empty", nil},
		{"duplicate code", []ConceptNode{base, base}},
		{"difficulty zero", []ConceptNode{{Code: "a", GradeRank: 1, Difficulty: 0}}},
		{"difficulty eleven", []ConceptNode{{Code: "a", GradeRank: 1, Difficulty: 11}}},
		{"grade out of order", []ConceptNode{
			{Code: "a", GradeRank: 2, Difficulty: 1},
			{Code: "b", GradeRank: 1, Difficulty: 1},
		}},
		{"difficulty out of order within grade", []ConceptNode{
			{Code: "a", GradeRank: 1, Difficulty: 5},
			{Code: "b", GradeRank: 1, Difficulty: 2},
		}},
	}
	for _, tt := range tests {
		if _, err := NewSpace(tt.nodes); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestNewSpace_Lookup(t *testing.T) {
	nodes := []ConceptNode{
		{Code: "a", GradeRank: 1, Difficulty: 1},
		{Code: "b", GradeRank: 1, Difficulty: 3},
		{Code: "c", GradeRank: 2, Difficulty: 1},
	}
	s, err := NewSpace(nodes)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Errorf("len = %d, want 3", s.Len())
	}
	if i, ok := s.IndexOf("b"); !ok || i != 1 {
		t.Errorf("IndexOf(b) = %d,%v", i, ok)
	}
	if _, ok := s.IndexOf("z"); ok {
		t.Error("IndexOf(z) should miss")
	}
	if s.At(2).Code != "c" {
		t.Errorf("At(2) = %q", s.At(2).Code)
	}
}

func TestFirstIndexAtGrade(t *testing.T) {
	nodes := []ConceptNode{
		{Code: "a", GradeRank: 1, Difficulty: 1},
		{Code: "b", GradeRank: 3, Difficulty: 1},
		{Code: "c", GradeRank: 3, Difficulty: 2},
		{Code: "d", GradeRank: 5, Difficulty: 1},
	}
	s, err := NewSpace(nodes)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		grade int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 1}, // nothing at grade 2, first concept at or above
		{3, 1},
		{5, 3},
		{9, 3}, // above everything: last index
	}
	for _, tt := range tests {
		if got := s.FirstIndexAtGrade(tt.grade); got != tt.want {
			t.Errorf("FirstIndexAtGrade(%d) = %d, want %d", tt.grade, got, tt.want)
		}
	}
}

func TestSeedCatalog_DefaultOrderingIsValidSpace(t *testing.T) {
	s, err := DefaultSpace(NewSeedCatalog())
	if err != nil {
		t.Fatalf("seed curriculum is not a valid space: %v", err)
	}
	if s.Len() < 20 {
		t.Errorf("seed curriculum has only %d concepts", s.Len())
	}
}

func TestGoalSpace_OrderedSubset(t *testing.T) {
	cat := NewSeedCatalog()
	s, err := GoalSpace(cat, "fractions-foundations")
	if err != nil {
		t.Fatal(err)
	}

	full, err := DefaultSpace(cat)
	if err != nil {
		t.Fatal(err)
	}
	prev := -1
	for _, n := range s.Nodes() {
		i, ok := full.IndexOf(n.Code)
		if !ok {
			t.Fatalf("goal concept %q not in curriculum", n.Code)
		}
		if i <= prev {
			t.Errorf("goal concept %q out of curriculum order", n.Code)
		}
		prev = i
	}
}

func TestGoalSpace_UnknownGoal(t *testing.T) {
	var notFound *GoalNotFoundError
	_, err := GoalSpace(NewSeedCatalog(), "underwater-basket-weaving")
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want *GoalNotFoundError", err)
	}
}

func TestGoalSpace_EmptyGoal(t *testing.T) {
	cat := NewSeedCatalog()
	if err := cat.RegisterGoalPack(GoalPack{ID: "hollow"}); err != nil {
		t.Fatal(err)
	}
	var empty *EmptyGoalError
	_, err := GoalSpace(cat, "hollow")
	if !errors.As(err, &empty) {
		t.Errorf("err = %v, want *EmptyGoalError", err)
	}
}

func TestRegisterGoalPack_UnknownConceptFailsLoudly(t *testing.T) {
	cat := NewSeedCatalog()
	err := cat.RegisterGoalPack(GoalPack{ID: "bad", Concepts: []string{"no-such-concept"}})
	if err == nil {
		t.Error("expected error for unknown concept code")
	}
}
