package database

import (
	"database/sql"
	"fmt"

	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type jobRepository struct {
	db dbConn
}

func newJobRepository(db dbConn) *jobRepository {
	return &jobRepository{db: db}
}

// Upsert creates or replaces the user's job, last write wins.
func (r *jobRepository) Upsert(job *entity.Job) error {
	query := `
		INSERT INTO jobs (user_id, job_name, hourly_wage, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			job_name = excluded.job_name,
			hourly_wage = excluded.hourly_wage,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		job.UserID,
		job.JobName,
		job.HourlyWage.String(),
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}

	return nil
}

func (r *jobRepository) GetByUserID(userID string) (*entity.Job, error) {
	job := &entity.Job{}
	var wage string

	query := `
		SELECT user_id, job_name, hourly_wage, updated_at
		FROM jobs
		WHERE user_id = ?
	`

	err := r.db.QueryRow(query, userID).Scan(
		&job.UserID,
		&job.JobName,
		&wage,
		&job.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	job.HourlyWage, err = decimal.NewFromString(wage)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored wage %q: %w", wage, err)
	}

	return job, nil
}
