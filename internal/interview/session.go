package interview

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// State is the lifecycle state of a session.
type State int

// Session lifecycle states. Finalized is terminal.
const (
	StateNotStarted State = iota
	StateConfigured
	StateInProgress
	StateFinalized
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateConfigured:
		return "configured"
	case StateInProgress:
		return "in_progress"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ActivityEventType tags the event appended on session completion.
const ActivityEventType = "interview_completed"

// ActivityEvent is one append-only activity log entry.
type ActivityEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Activity  string    `json:"activity"`
	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	Score     int       `json:"score,omitempty"`
}

// Errors returned by session transitions.
var (
	ErrUnknownType      = errors.New("unknown interview type")
	ErrNotConfigured    = errors.New("session is not configured")
	ErrNotInProgress    = errors.New("session is not in progress")
	ErrAlreadyFinalized = errors.New("session is already finalized")
)

// Session is one run of the mock interview feature, from type selection
// through finalization. It is owned by a single caller; transitions are
// not safe for concurrent use.
type Session struct {
	ID          string
	Type        Type
	TargetRole  string
	Questions   []string
	Answers     []string
	CompletedAt time.Time

	state         State
	questionIndex int
}

// NewSession returns a session in the NotStarted state.
func NewSession() *Session {
	return &Session{state: StateNotStarted}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// QuestionIndex returns the zero-based index of the current question.
func (s *Session) QuestionIndex() int {
	return s.questionIndex
}

// Configure fixes the interview type and target role for the session.
// It fails for unrecognized types, since those have no question bank and
// no session can run.
func (s *Session) Configure(t Type, targetRole string) error {
	if s.state == StateFinalized {
		return ErrAlreadyFinalized
	}
	questions := SelectQuestions(t)
	if len(questions) == 0 {
		return ErrUnknownType
	}
	s.Type = t
	s.TargetRole = targetRole
	s.Questions = questions
	s.state = StateConfigured
	return nil
}

// Start begins the interview at the first question. The session ID is
// assigned here, derived from the start time.
func (s *Session) Start() error {
	if s.state != StateConfigured {
		return ErrNotConfigured
	}
	s.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	s.Answers = make([]string, 0, len(s.Questions))
	s.questionIndex = 0
	s.state = StateInProgress
	return nil
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() string {
	if s.state != StateInProgress {
		return ""
	}
	return s.Questions[s.questionIndex]
}

// SubmitAnswer records the answer for the current question, overwriting
// any previous answer at that index. Empty answers are allowed.
func (s *Session) SubmitAnswer(answer string) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	for len(s.Answers) <= s.questionIndex {
		s.Answers = append(s.Answers, "")
	}
	s.Answers[s.questionIndex] = answer
	return nil
}

// Advance moves to the next question. It reports true when the current
// question is the last one, in which case the caller finalizes the
// session instead of advancing.
func (s *Session) Advance() (last bool, err error) {
	if s.state != StateInProgress {
		return false, ErrNotInProgress
	}
	if s.questionIndex >= len(s.Questions)-1 {
		return true, nil
	}
	s.questionIndex++
	return false, nil
}

// Back navigates to the previous question. Scores are unaffected.
func (s *Session) Back() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.questionIndex > 0 {
		s.questionIndex--
	}
	return nil
}

// Finalize scores the session and produces its activity event. It is
// valid from InProgress only, so it runs exactly once per session; both
// reaching the end of the questions and finishing early land here.
// Answers missing for trailing questions are treated as empty.
func (s *Session) Finalize(now time.Time) (ScoreResult, ActivityEvent, error) {
	if s.state == StateFinalized {
		return ScoreResult{}, ActivityEvent{}, ErrAlreadyFinalized
	}
	if s.state != StateInProgress {
		return ScoreResult{}, ActivityEvent{}, ErrNotInProgress
	}

	for len(s.Answers) < len(s.Questions) {
		s.Answers = append(s.Answers, "")
	}

	result := Score(s.Answers)
	s.CompletedAt = now
	s.state = StateFinalized

	event := ActivityEvent{
		Timestamp: now,
		Activity:  fmt.Sprintf("Completed %s interview - Score: %d/100", s.Type.Label(), result.OverallScore),
		Type:      ActivityEventType,
		SessionID: s.ID,
		Score:     result.OverallScore,
	}
	return result, event, nil
}
