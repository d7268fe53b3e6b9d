package submission

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists submissions.
type Repository interface {
	Create(ctx context.Context, sub Submission) error
	ListByPhone(ctx context.Context, phone string) ([]Submission, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed submission repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new submission.
func (r *PostgresRepository) Create(ctx context.Context, sub Submission) error {
	subID, err := uuid.Parse(sub.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO submissions (id, phone, document_name, instructions, status, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		subID, sub.Phone, sub.DocumentName, sub.Instructions, sub.Status, sub.SubmittedAt.UTC())
	return err
}

// ListByPhone returns a student's submission history, newest first.
func (r *PostgresRepository) ListByPhone(ctx context.Context, phone string) ([]Submission, error) {
	rows, err := r.db.Query(ctx, `SELECT id, phone, document_name, instructions, status, submitted_at
        FROM submissions WHERE phone = $1 ORDER BY submitted_at DESC`, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var (
			id  uuid.UUID
			sub Submission
		)
		if err := rows.Scan(&id, &sub.Phone, &sub.DocumentName, &sub.Instructions, &sub.Status, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		sub.ID = id.String()
		sub.SubmittedAt = sub.SubmittedAt.UTC()
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
