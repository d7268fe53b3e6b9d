package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresRepository implements Repository using PostgreSQL. The claims table
// carries a unique index on reference.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed claim repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a claim.
func (r *PostgresRepository) Create(ctx context.Context, claim Claim) error {
	claimID, err := uuid.Parse(claim.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO payment_claims (id, phone, method_id, reference, amount_xaf, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		claimID, claim.Phone, claim.MethodID, claim.Reference, claim.AmountXAF, claim.Status, claim.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateReference
		}
		return err
	}
	return nil
}

// Delete removes the claim recorded under reference, if any.
func (r *PostgresRepository) Delete(ctx context.Context, reference string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM payment_claims WHERE reference = $1`, reference)
	return err
}

// ListByPhone returns the claims recorded for a phone, newest first.
func (r *PostgresRepository) ListByPhone(ctx context.Context, phone string) ([]Claim, error) {
	rows, err := r.db.Query(ctx, `SELECT id, phone, method_id, reference, amount_xaf, status, created_at
        FROM payment_claims WHERE phone = $1 ORDER BY created_at DESC`, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []Claim
	for rows.Next() {
		var (
			id    uuid.UUID
			claim Claim
		)
		if err := rows.Scan(&id, &claim.Phone, &claim.MethodID, &claim.Reference, &claim.AmountXAF, &claim.Status, &claim.CreatedAt); err != nil {
			return nil, err
		}
		claim.ID = id.String()
		claim.CreatedAt = claim.CreatedAt.UTC()
		claims = append(claims, claim)
	}
	return claims, rows.Err()
}
