package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateInsight stores a generated career insight and returns its ID
func (db *DB) CreateInsight(ctx context.Context, insight CareerInsight) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO career_insights (user_id, insight_type, title, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		insight.UserID, insight.InsightType, insight.Title, insight.Content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create insight: %w", err)
	}
	return id, nil
}

// ListInsightsByUser retrieves a user's insights, newest first
func (db *DB) ListInsightsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]CareerInsight, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, insight_type, title, content, created_at
		 FROM career_insights
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	defer rows.Close()

	var insights []CareerInsight
	for rows.Next() {
		var ci CareerInsight
		if err := rows.Scan(&ci.ID, &ci.UserID, &ci.InsightType, &ci.Title,
			&ci.Content, &ci.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan insight: %w", err)
		}
		insights = append(insights, ci)
	}
	return insights, nil
}
