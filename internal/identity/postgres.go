package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

// PostgresProvider implements Provider and ProfileStore on PostgreSQL. It
// stands in for the hosted identity backend in self-managed deployments:
// accounts are keyed by credential address, secrets are bcrypt hashes, and a
// profile row is created in the same transaction as its account.
type PostgresProvider struct {
	db *pgxpool.Pool
}

// NewPostgresProvider builds a Postgres-backed identity provider.
func NewPostgresProvider(db *pgxpool.Pool) *PostgresProvider {
	return &PostgresProvider{db: db}
}

// CreateAccount inserts the account and its unpaid profile atomically. A
// duplicate address or phone surfaces as ErrAccountExists.
func (p *PostgresProvider) CreateAccount(ctx context.Context, address, secret string, meta Metadata) (Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	now := time.Now().UTC()

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return Account{}, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO accounts (address, full_name, phone, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)`, address, meta.FullName, meta.Phone, hash, now)
	if err != nil {
		return Account{}, translateConflict(err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO profiles (phone, has_paid, created_at)
        VALUES ($1, FALSE, $2)`, meta.Phone, now)
	if err != nil {
		return Account{}, translateConflict(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Account{}, err
	}

	return Account{Address: address, FullName: meta.FullName, Phone: meta.Phone, CreatedAt: now}, nil
}

// VerifyCredentials checks the secret against the stored hash. An unknown
// address and a wrong password are indistinguishable to the caller.
func (p *PostgresProvider) VerifyCredentials(ctx context.Context, address, secret string) (Session, error) {
	row := p.db.QueryRow(ctx, `SELECT address, full_name, phone, password_hash, created_at
        FROM accounts WHERE address = $1`, address)

	var (
		account Account
		hash    []byte
	)
	if err := row.Scan(&account.Address, &account.FullName, &account.Phone, &hash, &account.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Session{}, ErrBadCredentials
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		return Session{}, ErrBadCredentials
	}

	account.CreatedAt = account.CreatedAt.UTC()
	return Session{Account: account, VerifiedAt: time.Now().UTC()}, nil
}

// FindByPhone fetches the profile keyed by phone number.
func (p *PostgresProvider) FindByPhone(ctx context.Context, phone string) (Profile, error) {
	row := p.db.QueryRow(ctx, `SELECT phone, has_paid, created_at FROM profiles WHERE phone = $1`, phone)

	var profile Profile
	if err := row.Scan(&profile.Phone, &profile.HasPaid, &profile.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	profile.CreatedAt = profile.CreatedAt.UTC()
	return profile, nil
}

// MarkPaid flips the entitlement flag. There is no unpay path.
func (p *PostgresProvider) MarkPaid(ctx context.Context, phone string) error {
	cmd, err := p.db.Exec(ctx, `UPDATE profiles SET has_paid = TRUE WHERE phone = $1`, phone)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAccountExists
	}
	return err
}
