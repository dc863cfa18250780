package placement

import "github.com/abhisek/tutorcore/internal/concepts"

// SkillTag classifies a concept's standing after a goal-aware diagnostic.
type SkillTag string

const (
	// TagMastered: directly tested, answered correctly.
	TagMastered SkillTag = "mastered"
	// TagUnmastered: directly tested, answered incorrectly.
	TagUnmastered SkillTag = "unmastered"
	// TagLikelyMastered: untested but below the frontier (or a persisted
	// record says the student already knows it).
	TagLikelyMastered SkillTag = "likely-mastered"
	// TagLikelyUnmastered: untested and above the frontier, or contradicted
	// by a weak persisted record.
	TagLikelyUnmastered SkillTag = "likely-unmastered"
	// TagFrontier: the untested boundary concept itself; neither gap nor
	// mastered.
	TagFrontier SkillTag = "frontier"
)

// SkillMapEntry is the per-concept projection emitted in goal-aware mode.
type SkillMapEntry struct {
	Concept        concepts.ConceptNode
	Index          int
	Tag            SkillTag
	Tested         bool
	EstimatedHours float64
}

// hoursByDifficulty maps difficulty 1-10 to estimated hours-to-learn.
// Monotonically non-decreasing.
var hoursByDifficulty = [11]float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 4, 5, 6, 8}

// EstimatedHoursFor returns the hours-to-learn estimate for a difficulty.
// Out-of-range difficulties clamp to the table edges.
func EstimatedHoursFor(difficulty int) float64 {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 10 {
		difficulty = 10
	}
	return hoursByDifficulty[difficulty]
}

// buildSkillMap projects every concept in the space into a tagged entry.
// Tested concepts carry their evidence directly. Untested concepts below
// the frontier are assumed known unless a persisted probability under 0.5
// contradicts that; untested concepts above it are assumed unknown unless
// a persisted probability of 0.9 or more says otherwise. Hours-to-learn is
// zero for anything mastered or likely mastered.
func buildSkillMap(s *Search, frontierIndex int, prior map[string]float64) []SkillMapEntry {
	space := s.space
	entries := make([]SkillMapEntry, 0, space.Len())

	for i := 0; i < space.Len(); i++ {
		node := space.At(i)
		e := SkillMapEntry{Concept: node, Index: i}

		switch {
		case s.ConfirmedKnown[node.Code]:
			e.Tested = true
			e.Tag = TagMastered
		case s.ConfirmedUnknown[node.Code]:
			e.Tested = true
			e.Tag = TagUnmastered
		case i == frontierIndex:
			e.Tag = TagFrontier
		case i < frontierIndex:
			e.Tag = TagLikelyMastered
			if p, ok := prior[node.Code]; ok && p < 0.5 {
				e.Tag = TagLikelyUnmastered
			}
		default:
			e.Tag = TagLikelyUnmastered
			if p, ok := prior[node.Code]; ok && p >= 0.9 {
				e.Tag = TagLikelyMastered
			}
		}

		if e.Tag != TagMastered && e.Tag != TagLikelyMastered {
			e.EstimatedHours = EstimatedHoursFor(node.Difficulty)
		}
		entries = append(entries, e)
	}
	return entries
}
