package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"german_coach/internal/model"
)

func Test_gormExerciseRepository_CreateAndOrder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormExerciseRepository()

	learnerID := uuid.New()
	session := createTestSession(t, db, learnerID, model.LevelB2)

	prompts := []string{"Übersetze 'die Erkenntnis'.", "Bilde einen Satz mit 'obwohl'.", "Was bedeutet 'nachhaltig'?"}
	for i, prompt := range prompts {
		ex := &model.ExerciseResult{
			ExerciseID: uuid.New(),
			SessionID:  session.SessionID,
			LearnerID:  learnerID,
			Position:   i,
			Level:      model.LevelB2,
			Type:       model.ExerciseVocabulary,
			PromptText: prompt,
		}
		require.NoError(t, repo.Create(ctx, db, ex))
	}

	t.Run("history is returned in position order", func(t *testing.T) {
		exercises, err := repo.FindBySession(ctx, db, session.SessionID, 0)
		require.NoError(t, err)
		require.Len(t, exercises, 3)
		for i, ex := range exercises {
			assert.Equal(t, i, ex.Position)
			assert.Equal(t, prompts[i], ex.PromptText)
		}
	})

	t.Run("limit truncates the history", func(t *testing.T) {
		exercises, err := repo.FindBySession(ctx, db, session.SessionID, 2)
		require.NoError(t, err)
		assert.Len(t, exercises, 2)
	})

	t.Run("count matches history length", func(t *testing.T) {
		count, err := repo.CountBySession(ctx, db, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func Test_gormExerciseRepository_FindByPosition(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormExerciseRepository()

	learnerID := uuid.New()
	session := createTestSession(t, db, learnerID, model.LevelC1)

	ex := &model.ExerciseResult{
		ExerciseID: uuid.New(),
		SessionID:  session.SessionID,
		LearnerID:  learnerID,
		Position:   0,
		Level:      model.LevelC1,
		Type:       model.ExerciseExamTask,
		PromptText: "Halte einen kurzen Vortrag zum Thema Umweltschutz.",
	}
	require.NoError(t, repo.Create(ctx, db, ex))

	t.Run("existing position", func(t *testing.T) {
		found, err := repo.FindByPosition(ctx, db, session.SessionID, 0)
		require.NoError(t, err)
		assert.Equal(t, ex.ExerciseID, found.ExerciseID)
		assert.False(t, found.Answered())
	})

	t.Run("position past end of history", func(t *testing.T) {
		_, err := repo.FindByPosition(ctx, db, session.SessionID, 1)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
	})

	t.Run("negative position", func(t *testing.T) {
		_, err := repo.FindByPosition(ctx, db, session.SessionID, -1)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
	})
}

func Test_gormExerciseRepository_UpdateAnswer(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormExerciseRepository()

	learnerID := uuid.New()
	session := createTestSession(t, db, learnerID, model.LevelB2)

	first := &model.ExerciseResult{
		ExerciseID: uuid.New(),
		SessionID:  session.SessionID,
		LearnerID:  learnerID,
		Position:   0,
		Level:      model.LevelB2,
		Type:       model.ExerciseVocabulary,
		PromptText: "Was bedeutet 'die Herausforderung'?",
	}
	second := &model.ExerciseResult{
		ExerciseID: uuid.New(),
		SessionID:  session.SessionID,
		LearnerID:  learnerID,
		Position:   1,
		Level:      model.LevelB2,
		Type:       model.ExerciseVocabulary,
		PromptText: "Bilde einen Satz mit 'die Erkenntnis'.",
	}
	require.NoError(t, repo.Create(ctx, db, first))
	require.NoError(t, repo.Create(ctx, db, second))

	answer := "the challenge"
	err := repo.UpdateAnswer(ctx, db, first.ExerciseID, map[string]interface{}{
		"user_answer": &answer,
		"feedback":    "Richtig!",
		"hint":        "",
	})
	require.NoError(t, err)

	t.Run("addressed exercise is updated", func(t *testing.T) {
		found, err := repo.FindByPosition(ctx, db, session.SessionID, 0)
		require.NoError(t, err)
		require.NotNil(t, found.UserAnswer)
		assert.Equal(t, answer, *found.UserAnswer)
		assert.Equal(t, "Richtig!", found.Feedback)
		assert.True(t, found.Answered())
	})

	t.Run("other exercises are untouched", func(t *testing.T) {
		found, err := repo.FindByPosition(ctx, db, session.SessionID, 1)
		require.NoError(t, err)
		assert.Nil(t, found.UserAnswer)
		assert.Empty(t, found.Feedback)
	})

	t.Run("unknown exercise id", func(t *testing.T) {
		err := repo.UpdateAnswer(ctx, db, uuid.New(), map[string]interface{}{"feedback": "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
