package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedSession(t *testing.T, typ Type) *Session {
	t.Helper()
	s := NewSession()
	require.NoError(t, s.Configure(typ, "software-engineer"))
	require.NoError(t, s.Start())
	return s
}

func TestSession_ConfigureUnknownType(t *testing.T) {
	s := NewSession()
	err := s.Configure(Type("panel"), "software-engineer")
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, StateNotStarted, s.State())
}

func TestSession_StartRequiresConfiguration(t *testing.T) {
	s := NewSession()
	assert.ErrorIs(t, s.Start(), ErrNotConfigured)
}

func TestSession_FullRun(t *testing.T) {
	s := startedSession(t, TypeBehavioral)
	assert.Equal(t, StateInProgress, s.State())
	assert.NotEmpty(t, s.ID)

	for i := 0; i < len(s.Questions); i++ {
		assert.Equal(t, s.Questions[i], s.CurrentQuestion())
		require.NoError(t, s.SubmitAnswer("an answer with a few words"))

		last, err := s.Advance()
		require.NoError(t, err)
		if i < len(s.Questions)-1 {
			assert.False(t, last)
		} else {
			assert.True(t, last)
		}
	}

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	result, event, err := s.Finalize(now)
	require.NoError(t, err)

	assert.Equal(t, StateFinalized, s.State())
	assert.Equal(t, now, s.CompletedAt)
	assert.GreaterOrEqual(t, result.OverallScore, 60)
	assert.Equal(t, "interview_completed", event.Type)
	assert.Equal(t, s.ID, event.SessionID)
	assert.Equal(t, result.OverallScore, event.Score)
}

func TestSession_BackNavigation(t *testing.T) {
	s := startedSession(t, TypeTechnical)

	require.NoError(t, s.SubmitAnswer("first"))
	_, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, 1, s.QuestionIndex())

	require.NoError(t, s.Back())
	assert.Equal(t, 0, s.QuestionIndex())
	// Back at the first question stays put.
	require.NoError(t, s.Back())
	assert.Equal(t, 0, s.QuestionIndex())

	// The earlier answer survives and can be overwritten.
	require.NoError(t, s.SubmitAnswer("revised first"))
	assert.Equal(t, "revised first", s.Answers[0])
}

func TestSession_FinalizeEarlyPadsMissingAnswers(t *testing.T) {
	s := startedSession(t, TypeCaseStudy)
	require.NoError(t, s.SubmitAnswer("only answered the first question"))

	result, _, err := s.Finalize(time.Now())
	require.NoError(t, err)

	assert.Len(t, s.Answers, len(s.Questions))
	assert.GreaterOrEqual(t, result.OverallScore, 60)
}

func TestSession_FinalizeExactlyOnce(t *testing.T) {
	s := startedSession(t, TypeTechnical)

	_, _, err := s.Finalize(time.Now())
	require.NoError(t, err)

	_, _, err = s.Finalize(time.Now())
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestSession_TransitionsRejectedAfterFinalize(t *testing.T) {
	s := startedSession(t, TypeTechnical)
	_, _, err := s.Finalize(time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, s.SubmitAnswer("late"), ErrNotInProgress)
	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrNotInProgress)
	assert.ErrorIs(t, s.Back(), ErrNotInProgress)
	assert.ErrorIs(t, s.Configure(TypeBehavioral, "role"), ErrAlreadyFinalized)
}

func TestSession_ActivityEventText(t *testing.T) {
	s := startedSession(t, TypeCaseStudy)
	for range s.Questions {
		require.NoError(t, s.SubmitAnswer(""))
		_, err := s.Advance()
		require.NoError(t, err)
	}

	_, event, err := s.Finalize(time.Now())
	require.NoError(t, err)

	// Underscore in the type reads as a space in the activity text.
	assert.Equal(t, "Completed case study interview - Score: 65/100", event.Activity)
}
