package generation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"german_coach/internal/model"
)

func TestBuildExercisePrompt_EmbedsLevelAndType(t *testing.T) {
	for _, level := range model.Levels {
		for _, exType := range []model.ExerciseType{model.ExerciseVocabulary, model.ExerciseExamTask} {
			name := fmt.Sprintf("%s_%s", level, exType)
			t.Run(name, func(t *testing.T) {
				prompt, err := BuildExercisePrompt(level, exType)
				require.NoError(t, err)

				assert.Contains(t, prompt.UserMessage, string(level))
				assert.Contains(t, prompt.UserMessage, TypeLabel(exType))
				assert.NotEmpty(t, prompt.System)
			})
		}
	}
}

func TestBuildExercisePrompt_B2Vocabulary(t *testing.T) {
	prompt, err := BuildExercisePrompt(model.LevelB2, model.ExerciseVocabulary)
	require.NoError(t, err)

	assert.Contains(t, prompt.UserMessage, "B2")
	assert.Contains(t, prompt.UserMessage, "Vocabulary")
}

func TestBuildExercisePrompt_InvalidLevel(t *testing.T) {
	_, err := BuildExercisePrompt(model.Level("D1"), model.ExerciseVocabulary)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidLevel)
}

func TestBuildExercisePrompt_Deterministic(t *testing.T) {
	first, err := BuildExercisePrompt(model.LevelC1, model.ExerciseExamTask)
	require.NoError(t, err)
	second, err := BuildExercisePrompt(model.LevelC1, model.ExerciseExamTask)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildFeedbackPrompt(t *testing.T) {
	tests := []struct {
		name     string
		level    model.Level
		exType   model.ExerciseType
		task     string
		answer   string
		wantErr  error
		contains []string
	}{
		{
			name:     "vocabulary feedback carries task and answer",
			level:    model.LevelA2,
			exType:   model.ExerciseVocabulary,
			task:     "Übersetze 'die Erfahrung'.",
			answer:   "the experience",
			contains: []string{"Übersetze 'die Erfahrung'.", "the experience", "Feedback:"},
		},
		{
			name:     "exam feedback carries task and answer",
			level:    model.LevelB2,
			exType:   model.ExerciseExamTask,
			task:     "Schreibe eine formelle E-Mail an deinen Vermieter.",
			answer:   "Sehr geehrter Herr Müller, ...",
			contains: []string{"Schreibe eine formelle E-Mail", "Sehr geehrter Herr Müller", "Feedback:"},
		},
		{
			name:    "invalid level rejected",
			level:   model.Level("Z9"),
			exType:  model.ExerciseVocabulary,
			task:    "task",
			answer:  "answer",
			wantErr: model.ErrInvalidLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := BuildFeedbackPrompt(tt.level, tt.exType, tt.task, tt.answer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, prompt.UserMessage, want)
			}
		})
	}
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Vocabulary", TypeLabel(model.ExerciseVocabulary))
	assert.Equal(t, "ExamTask", TypeLabel(model.ExerciseExamTask))
}

func TestSystemPromptIsGermanTeacherPersona(t *testing.T) {
	prompt, err := BuildExercisePrompt(model.LevelA1, model.ExerciseVocabulary)
	require.NoError(t, err)
	assert.True(t, strings.Contains(prompt.System, "German teacher"))
}
