package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the long-lived per-(student, concept) knowledge state.
// Created on first observation, updated on every response, never deleted.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Float("probability").
			Comment("Bayesian knowledge probability in [0,1]"),
		field.String("level").NotEmpty(),
		field.Int("practice_count").Default(0).NonNegative(),
		field.Int("correct_count").Default(0).NonNegative(),
		field.Time("last_practiced_at").Optional().Nillable(),
		field.Time("next_review_at").Optional().Nillable(),
		field.Int("review_interval").Default(1).Min(1).
			Comment("Current review interval in days"),
		field.Int("review_count").Default(0).NonNegative(),
		field.Float("easiness_factor").Default(2.5),
		field.Int("consecutive_correct").Default(0).NonNegative(),
		field.Int("personal_best_latency_ms").Default(0).NonNegative(),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "concept_id").Unique(),
		index.Fields("student_id"),
	}
}
