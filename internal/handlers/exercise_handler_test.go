// internal/handlers/exercise_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"german_coach/internal/handlers"
	"german_coach/internal/middleware"
	"german_coach/internal/model"
	"german_coach/internal/service/mocks"
)

func newExerciseRouter(svc *mocks.ExerciseService) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.NewExerciseHandler(svc, logger)

	router := chi.NewRouter()
	router.Use(middleware.DevLearnerContextMiddleware)
	router.Post("/api/v1/sessions/{session_id}/exercises", h.PostExercise)
	router.Get("/api/v1/sessions/{session_id}/exercises", h.GetExercises)
	router.Post("/api/v1/sessions/{session_id}/exercises/{index}/answer", h.PostAnswer)
	return router
}

func TestExerciseHandler_PostExercise(t *testing.T) {
	learnerID := uuid.New()
	sessionID := uuid.New()
	validBody := model.CreateExerciseRequest{ExerciseType: "vocabulary"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mocks.ExerciseService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "creates an exercise",
			body: validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("CreateExercise", mock.Anything, learnerID, sessionID, &validBody).
					Return(&model.ExerciseResult{
						ExerciseID: uuid.New(),
						SessionID:  sessionID,
						Position:   0,
						Level:      model.LevelB2,
						Type:       model.ExerciseVocabulary,
						PromptText: "Was bedeutet 'Erkenntnis'?",
					}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown exercise type is rejected by validation",
			body:           model.CreateExerciseRequest{ExerciseType: "quiz"},
			setupMock:      func(svc *mocks.ExerciseService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "rate limited backend maps to 429",
			body: validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("CreateExercise", mock.Anything, learnerID, sessionID, &validBody).
					Return(nil, model.NewAppError("GENERATION_RATE_LIMITED", "The exercise generator is busy. Try again shortly.", "", model.ErrRateLimited)).Once()
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "GENERATION_RATE_LIMITED",
		},
		{
			name: "unavailable backend maps to 502",
			body: validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("CreateExercise", mock.Anything, learnerID, sessionID, &validBody).
					Return(nil, model.NewAppError("GENERATION_UNAVAILABLE", "The exercise generator is currently unavailable.", "", model.ErrGenerationUnavailable)).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "GENERATION_UNAVAILABLE",
		},
		{
			name: "unparsable generation maps to 502",
			body: validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("CreateExercise", mock.Anything, learnerID, sessionID, &validBody).
					Return(nil, model.NewAppError("UNPARSABLE_RESPONSE", "The generated exercise could not be understood.", "", model.ErrUnparsableResponse)).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "UNPARSABLE_RESPONSE",
		},
		{
			name: "unknown session is a 404",
			body: validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("CreateExercise", mock.Anything, learnerID, sessionID, &validBody).
					Return(nil, model.NewAppError("SESSION_NOT_FOUND", "Session not found.", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SESSION_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.ExerciseService)
			tc.setupMock(svc)
			router := newExerciseRouter(svc)

			req := newRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/exercises", sessionID), tc.body, &learnerID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeErrorCode(t, rr))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestExerciseHandler_GetExercises(t *testing.T) {
	learnerID := uuid.New()
	sessionID := uuid.New()

	t.Run("returns the history in position order", func(t *testing.T) {
		svc := new(mocks.ExerciseService)
		svc.On("ListExercises", mock.Anything, learnerID, sessionID).
			Return([]*model.ExerciseResult{
				{ExerciseID: uuid.New(), Position: 0, PromptText: "first"},
				{ExerciseID: uuid.New(), Position: 1, PromptText: "second"},
			}, nil).Once()
		router := newExerciseRouter(svc)

		req := newRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/sessions/%s/exercises", sessionID), nil, &learnerID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []*model.ExerciseResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Position)
		assert.Equal(t, 1, got[1].Position)
	})

	t.Run("empty history yields an empty array", func(t *testing.T) {
		svc := new(mocks.ExerciseService)
		svc.On("ListExercises", mock.Anything, learnerID, sessionID).Return(nil, nil).Once()
		router := newExerciseRouter(svc)

		req := newRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/sessions/%s/exercises", sessionID), nil, &learnerID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestExerciseHandler_PostAnswer(t *testing.T) {
	learnerID := uuid.New()
	sessionID := uuid.New()
	validBody := model.SubmitAnswerRequest{Answer: "die Erkenntnis"}

	answered := "die Erkenntnis"
	tests := []struct {
		name           string
		index          string
		body           interface{}
		setupMock      func(svc *mocks.ExerciseService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "records the answer and returns feedback",
			index: "1",
			body:  validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("SubmitAnswer", mock.Anything, learnerID, sessionID, 1, &validBody).
					Return(&model.ExerciseResult{
						ExerciseID: uuid.New(),
						Position:   1,
						PromptText: "Was bedeutet 'Erkenntnis'?",
						UserAnswer: &answered,
						Feedback:   "Richtig!",
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "position past the end is a 404",
			index: "99",
			body:  validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("SubmitAnswer", mock.Anything, learnerID, sessionID, 99, &validBody).
					Return(nil, model.NewAppError("EXERCISE_NOT_FOUND", "No exercise at this position.", "index", model.ErrIndexOutOfRange)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "EXERCISE_NOT_FOUND",
		},
		{
			name:  "already answered is a conflict",
			index: "0",
			body:  validBody,
			setupMock: func(svc *mocks.ExerciseService) {
				svc.On("SubmitAnswer", mock.Anything, learnerID, sessionID, 0, &validBody).
					Return(nil, model.NewAppError("ALREADY_ANSWERED", "This exercise has already been answered.", "index", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_ANSWERED",
		},
		{
			name:           "non-numeric index is a bad request",
			index:          "abc",
			body:           validBody,
			setupMock:      func(svc *mocks.ExerciseService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:           "negative index is a bad request",
			index:          "-1",
			body:           validBody,
			setupMock:      func(svc *mocks.ExerciseService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:           "empty answer is rejected by validation",
			index:          "0",
			body:           model.SubmitAnswerRequest{},
			setupMock:      func(svc *mocks.ExerciseService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.ExerciseService)
			tc.setupMock(svc)
			router := newExerciseRouter(svc)

			target := fmt.Sprintf("/api/v1/sessions/%s/exercises/%s/answer", sessionID, tc.index)
			req := newRequest(t, http.MethodPost, target, tc.body, &learnerID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeErrorCode(t, rr))
			}
			svc.AssertExpectations(t)
		})
	}
}
