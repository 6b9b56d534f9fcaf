package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ActivityRetentionCap is the number of activity events kept per user.
// Appends beyond the cap drop the oldest entries.
const ActivityRetentionCap = 20

// AppendActivity stores one activity event and trims the user's feed to
// the retention cap, oldest entries first.
func (db *DB) AppendActivity(ctx context.Context, event ActivityEvent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO activity_events (user_id, timestamp, activity, type, session_id, score)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		event.UserID, event.Timestamp, event.Activity, event.Type,
		event.SessionID, event.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity event: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`DELETE FROM activity_events
		 WHERE user_id = $1 AND id NOT IN (
		   SELECT id FROM activity_events
		   WHERE user_id = $1
		   ORDER BY timestamp DESC, id DESC
		   LIMIT $2
		 )`,
		event.UserID, ActivityRetentionCap,
	)
	if err != nil {
		return fmt.Errorf("failed to trim activity events: %w", err)
	}
	return nil
}

// ListActivityByUser retrieves a user's recent activity, newest first
func (db *DB) ListActivityByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ActivityEvent, error) {
	if limit <= 0 || limit > ActivityRetentionCap {
		limit = ActivityRetentionCap
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, timestamp, activity, type, session_id, score
		 FROM activity_events
		 WHERE user_id = $1 ORDER BY timestamp DESC, id DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity events: %w", err)
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var e ActivityEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.Timestamp, &e.Activity, &e.Type,
			&e.SessionID, &e.Score); err != nil {
			return nil, fmt.Errorf("failed to scan activity event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}
