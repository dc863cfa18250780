package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorcore/ent"
	"github.com/abhisek/tutorcore/ent/masteryrecord"
)

// masteryRepo implements MasteryRepo over the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, studentID, conceptID string) (*MasteryRecordData, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.StudentID(studentID),
			masteryrecord.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return entToRecordData(rec), nil
}

func (r *masteryRepo) Put(ctx context.Context, data *MasteryRecordData) error {
	existing, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.StudentID(data.StudentID),
			masteryrecord.ConceptID(data.ConceptID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query mastery record: %w", err)
	}

	if ent.IsNotFound(err) {
		builder := r.client.MasteryRecord.Create().
			SetStudentID(data.StudentID).
			SetConceptID(data.ConceptID).
			SetProbability(data.Probability).
			SetLevel(data.Level).
			SetPracticeCount(data.PracticeCount).
			SetCorrectCount(data.CorrectCount).
			SetReviewInterval(data.ReviewInterval).
			SetReviewCount(data.ReviewCount).
			SetEasinessFactor(data.EasinessFactor).
			SetConsecutiveCorrect(data.ConsecutiveCorrect).
			SetPersonalBestLatencyMs(data.PersonalBestLatencyMs)
		if data.LastPracticedAt != nil {
			builder = builder.SetLastPracticedAt(*data.LastPracticedAt)
		}
		if data.NextReviewAt != nil {
			builder = builder.SetNextReviewAt(*data.NextReviewAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create mastery record: %w", err)
		}
		return nil
	}

	builder := existing.Update().
		SetProbability(data.Probability).
		SetLevel(data.Level).
		SetPracticeCount(data.PracticeCount).
		SetCorrectCount(data.CorrectCount).
		SetReviewInterval(data.ReviewInterval).
		SetReviewCount(data.ReviewCount).
		SetEasinessFactor(data.EasinessFactor).
		SetConsecutiveCorrect(data.ConsecutiveCorrect).
		SetPersonalBestLatencyMs(data.PersonalBestLatencyMs)
	if data.LastPracticedAt != nil {
		builder = builder.SetLastPracticedAt(*data.LastPracticedAt)
	}
	if data.NextReviewAt != nil {
		builder = builder.SetNextReviewAt(*data.NextReviewAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	return nil
}

func (r *masteryRepo) ListByStudent(ctx context.Context, studentID string) ([]*MasteryRecordData, error) {
	recs, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.StudentID(studentID)).
		Order(ent.Asc(masteryrecord.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}
	out := make([]*MasteryRecordData, len(recs))
	for i, rec := range recs {
		out[i] = entToRecordData(rec)
	}
	return out, nil
}

func entToRecordData(rec *ent.MasteryRecord) *MasteryRecordData {
	return &MasteryRecordData{
		StudentID:             rec.StudentID,
		ConceptID:             rec.ConceptID,
		Probability:           rec.Probability,
		Level:                 rec.Level,
		PracticeCount:         rec.PracticeCount,
		CorrectCount:          rec.CorrectCount,
		LastPracticedAt:       rec.LastPracticedAt,
		NextReviewAt:          rec.NextReviewAt,
		ReviewInterval:        rec.ReviewInterval,
		ReviewCount:           rec.ReviewCount,
		EasinessFactor:        rec.EasinessFactor,
		ConsecutiveCorrect:    rec.ConsecutiveCorrect,
		PersonalBestLatencyMs: rec.PersonalBestLatencyMs,
	}
}
