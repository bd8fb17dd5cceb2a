package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExercise(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ParsedExercise
		wantErr error
	}{
		{
			name: "labeled sections with empty feedback and hint",
			raw:  "Exercise: Was bedeutet 'Erkenntnis'?\nFeedback: \nHint: ",
			want: ParsedExercise{
				PromptText: "Was bedeutet 'Erkenntnis'?",
				Feedback:   "",
				Hint:       "",
			},
		},
		{
			name: "multi-line exercise body",
			raw:  "Exercise: die Herausforderung (the challenge)\nBilde einen Satz mit diesem Wort.\nHint: Think about work contexts.",
			want: ParsedExercise{
				PromptText: "die Herausforderung (the challenge)\nBilde einen Satz mit diesem Wort.",
				Hint:       "Think about work contexts.",
			},
		},
		{
			name: "german labels accepted",
			raw:  "Aufgabe: Schreibe einen kurzen Kommentar.\nHinweis: Nutze Konnektoren.",
			want: ParsedExercise{
				PromptText: "Schreibe einen kurzen Kommentar.",
				Hint:       "Nutze Konnektoren.",
			},
		},
		{
			name: "preamble before label is ignored",
			raw:  "Gerne! Hier ist deine Aufgabe:\nExercise: Übersetze 'nachhaltig'.",
			want: ParsedExercise{
				PromptText: "Übersetze 'nachhaltig'.",
			},
		},
		{
			name:    "missing exercise section",
			raw:     "Feedback: Gut gemacht!",
			wantErr: ErrInvalidResponse,
		},
		{
			name:    "empty response",
			raw:     "   \n  ",
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExercise(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExercise_Idempotent(t *testing.T) {
	raw := "Exercise: Was bedeutet 'Erkenntnis'?\nFeedback: \nHint: "

	first, err := ParseExercise(raw)
	require.NoError(t, err)
	second, err := ParseExercise(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseFeedback(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantFeedback string
		wantHint     string
		wantErr      error
	}{
		{
			name:         "labeled feedback and hint",
			raw:          "Feedback: Fast richtig! 'Der Erkenntnis' muss 'die Erkenntnis' sein.\nHint: Nouns ending in -nis are usually neuter or feminine.",
			wantFeedback: "Fast richtig! 'Der Erkenntnis' muss 'die Erkenntnis' sein.",
			wantHint:     "Nouns ending in -nis are usually neuter or feminine.",
		},
		{
			name:         "unlabeled free-form text counts entirely as feedback",
			raw:          "Sehr gut! Dein Satz ist korrekt.",
			wantFeedback: "Sehr gut! Dein Satz ist korrekt.",
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback, hint, err := ParseFeedback(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFeedback, feedback)
			assert.Equal(t, tt.wantHint, hint)
		})
	}
}
