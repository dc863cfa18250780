package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEvent records a completed diagnostic placement.
type DiagnosisEvent struct {
	ent.Schema
}

func (DiagnosisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("search_id").NotEmpty(),
		field.String("student_id").NotEmpty(),
		field.String("goal_id").Optional().Default(""),
		field.String("frontier_concept").NotEmpty(),
		field.Int("grade_estimate"),
		field.Float("confidence"),
		field.Int("questions_asked"),
		field.Int("mastered_count"),
		field.Int("gap_count"),
		field.String("summary").Optional().Default(""),
	}
}

func (DiagnosisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("search_id"),
	}
}
