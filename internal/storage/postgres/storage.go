package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage relies on; pgxmock
// implements it for tests.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type sessionRepository struct {
	storage *Storage
}

type pendingPaymentRepository struct {
	storage *Storage
}

// sessionDocument is the JSONB body persisted per configuration session.
type sessionDocument struct {
	Config   model.CakeConfig     `json:"config"`
	Progress model.WizardProgress `json:"progress"`
	Studio   model.StudioScene    `json:"studio"`
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) PendingPayments() repository.PendingPaymentRepository {
	return &pendingPaymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS config_sessions (
            id UUID PRIMARY KEY,
            customer_id TEXT NOT NULL,
            bakery_id TEXT NOT NULL,
            document JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS pending_payments (
            id UUID PRIMARY KEY,
            order_id TEXT UNIQUE NOT NULL,
            token TEXT NOT NULL,
            expires_at TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_config_sessions_customer ON config_sessions(customer_id, updated_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_pending_payments_expiry ON pending_payments(expires_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, session *model.ConfigSession) error {
	doc, err := marshalDocument(session)
	if err != nil {
		return err
	}

	const query = `INSERT INTO config_sessions (id, customer_id, bakery_id, document, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.storage.pool.Exec(ctx, query,
		session.ID, session.CustomerID, session.BakeryID, doc, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("session %s already exists", session.ID)
		}
		return err
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	const query = `SELECT id, customer_id, bakery_id, document, created_at, updated_at
                   FROM config_sessions WHERE id=$1`

	var (
		session model.ConfigSession
		raw     []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.CustomerID, &session.BakeryID, &raw, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	var doc sessionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode session document: %w", err)
	}
	session.Config = doc.Config
	session.Progress = doc.Progress
	session.Studio = doc.Studio
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *model.ConfigSession) error {
	doc, err := marshalDocument(session)
	if err != nil {
		return err
	}

	const query = `UPDATE config_sessions SET document=$1, updated_at=$2 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, doc, session.UpdatedAt, session.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM config_sessions WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

func marshalDocument(session *model.ConfigSession) (string, error) {
	doc, err := json.Marshal(sessionDocument{
		Config:   session.Config,
		Progress: session.Progress,
		Studio:   session.Studio,
	})
	if err != nil {
		return "", fmt.Errorf("encode session document: %w", err)
	}
	return string(doc), nil
}

// --- PendingPaymentRepository implementation ---

func (r *pendingPaymentRepository) Add(ctx context.Context, p *repository.PendingPayment) error {
	const query = `INSERT INTO pending_payments (id, order_id, token, expires_at, created_at)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (order_id) DO UPDATE SET expires_at = EXCLUDED.expires_at`
	_, err := r.storage.pool.Exec(ctx, query, p.ID, p.OrderID, p.Token, p.ExpiresAt, p.CreatedAt)
	return err
}

func (r *pendingPaymentRepository) SelectExpired(ctx context.Context, now time.Time, limit int) ([]repository.PendingPayment, error) {
	const query = `SELECT id, order_id, token, expires_at, created_at
                   FROM pending_payments
                   WHERE expires_at <= $1
                   ORDER BY expires_at
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.PendingPayment
	for rows.Next() {
		var p repository.PendingPayment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Token, &p.ExpiresAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *pendingPaymentRepository) Remove(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM pending_payments WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

func (r *pendingPaymentRepository) RemoveByOrder(ctx context.Context, orderID string) error {
	const query = `DELETE FROM pending_payments WHERE order_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, orderID)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
