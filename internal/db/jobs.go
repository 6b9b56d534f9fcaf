package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListJobListingsOptions holds optional filters for listing jobs.
type ListJobListingsOptions struct {
	Search   string
	Location string
	Limit    int
	Offset   int
}

// ListJobListings retrieves curated job listings with optional filters,
// newest first.
func (db *DB) ListJobListings(ctx context.Context, opts ListJobListingsOptions) ([]JobListing, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	query := `SELECT id, title, company, location, salary, type, description,
		 requirements, skills, external_url, posted_at
		 FROM job_listings WHERE 1=1`
	args := []any{}
	argNum := 1

	if opts.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR company ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+opts.Search+"%")
		argNum++
	}
	if opts.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+opts.Location+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY posted_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job listings: %w", err)
	}
	defer rows.Close()

	var listings []JobListing
	for rows.Next() {
		var j JobListing
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary,
			&j.Type, &j.Description, &j.Requirements, &j.Skills, &j.ExternalURL,
			&j.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, j)
	}
	return listings, nil
}

// SaveJob bookmarks a listing for a user. Saving twice is a no-op.
func (db *DB) SaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// UnsaveJob removes a bookmark
func (db *DB) UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return fmt.Errorf("failed to unsave job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("saved job not found: %s", jobID)
	}
	return nil
}

// ListSavedJobs retrieves the listings a user has bookmarked
func (db *DB) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]JobListing, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT j.id, j.title, j.company, j.location, j.salary, j.type, j.description,
		 j.requirements, j.skills, j.external_url, j.posted_at
		 FROM job_listings j
		 JOIN saved_jobs s ON s.job_id = j.id
		 WHERE s.user_id = $1
		 ORDER BY s.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	defer rows.Close()

	var listings []JobListing
	for rows.Next() {
		var j JobListing
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary,
			&j.Type, &j.Description, &j.Requirements, &j.Skills, &j.ExternalURL,
			&j.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, j)
	}
	return listings, nil
}

// SeedJobListings inserts the curated listings if the table is empty.
// The listings are static content; there is no job-board integration.
func (db *DB) SeedJobListings(ctx context.Context, listings []JobListing) error {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_listings`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count job listings: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, j := range listings {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO job_listings
			 (title, company, location, salary, type, description, requirements, skills, external_url, posted_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			j.Title, j.Company, j.Location, j.Salary, j.Type, j.Description,
			j.Requirements, j.Skills, j.ExternalURL, j.PostedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed job listing %q: %w", j.Title, err)
		}
	}
	return nil
}
