package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `id, user_id, session_id, type, target_role, score,
	 questions_asked, total_questions, answers, result, completed_at`

// AppendSession stores one completed interview session summary and
// returns its row ID. The session list is append-only and unbounded.
func (db *DB) AppendSession(ctx context.Context, session InterviewSession) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interview_sessions
		 (user_id, session_id, type, target_role, score, questions_asked,
		  total_questions, answers, result, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		session.UserID, session.SessionID, session.Type, session.TargetRole,
		session.Score, session.QuestionsAsked, session.TotalQuestions,
		session.Answers, session.Result, session.CompletedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append interview session: %w", err)
	}
	return id, nil
}

// GetSession retrieves one interview session by row ID. Returns nil if
// not found.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*InterviewSession, error) {
	var s InterviewSession
	err := db.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM interview_sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.UserID, &s.SessionID, &s.Type, &s.TargetRole, &s.Score,
		&s.QuestionsAsked, &s.TotalQuestions, &s.Answers, &s.Result, &s.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview session: %w", err)
	}
	return &s, nil
}

// ListSessionsByUser retrieves a user's interview history, newest first
func (db *DB) ListSessionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]InterviewSession, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+sessionColumns+` FROM interview_sessions
		 WHERE user_id = $1 ORDER BY completed_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview sessions: %w", err)
	}
	defer rows.Close()

	var sessions []InterviewSession
	for rows.Next() {
		var s InterviewSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.SessionID, &s.Type, &s.TargetRole,
			&s.Score, &s.QuestionsAsked, &s.TotalQuestions, &s.Answers, &s.Result,
			&s.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
