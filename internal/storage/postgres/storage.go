package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/qrplate/qrplate/internal/domain/errors"
	"github.com/qrplate/qrplate/internal/domain/model"
	"github.com/qrplate/qrplate/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on,
// satisfied by pgxmock in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type businessRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type sinkConfigRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
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
func (s *Storage) Businesses() repository.BusinessRepository {
	return &businessRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) SinkConfigs() repository.SinkConfigRepository {
	return &sinkConfigRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS businesses (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            ordering_enabled BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            business_id TEXT NOT NULL REFERENCES businesses(id),
            table_id TEXT NOT NULL,
            items JSONB NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            tax DOUBLE PRECISION NOT NULL DEFAULT 0,
            discount DOUBLE PRECISION NOT NULL DEFAULT 0,
            total DOUBLE PRECISION NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            ai_summary TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS printer_configs (
            business_id TEXT PRIMARY KEY REFERENCES businesses(id),
            enabled BOOLEAN NOT NULL,
            transport TEXT NOT NULL,
            endpoint TEXT NOT NULL,
            payload_type TEXT NOT NULL,
            headers JSONB NOT NULL DEFAULT '{}',
            port INTEGER,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS pos_configs (
            business_id TEXT PRIMARY KEY REFERENCES businesses(id),
            enabled BOOLEAN NOT NULL,
            provider TEXT NOT NULL,
            endpoint TEXT NOT NULL,
            method TEXT NOT NULL,
            headers JSONB NOT NULL DEFAULT '{}',
            timeout_ms INTEGER NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_business ON orders(business_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- BusinessRepository implementation ---

func (r *businessRepository) Create(ctx context.Context, business *model.Business) error {
	const query = `INSERT INTO businesses (id, name, ordering_enabled) VALUES ($1, $2, $3) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, business.ID, business.Name, business.OrderingEnabled).Scan(&business.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*model.Business, error) {
	const query = `SELECT id, name, ordering_enabled, created_at FROM businesses WHERE id=$1`
	var b model.Business
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.OrderingEnabled, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *businessRepository) SetOrderingEnabled(ctx context.Context, id string, enabled bool) error {
	const query = `UPDATE businesses SET ordering_enabled=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, enabled, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	const query = `INSERT INTO orders (id, business_id, table_id, items, subtotal, tax, discount, total, notes, ai_summary, status, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.storage.pool.Exec(ctx, query,
		order.ID, order.BusinessID, order.TableID, string(items),
		order.Subtotal, order.Tax, order.Discount, order.Total,
		order.Notes, order.AISummary, string(order.Status), order.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT id, business_id, table_id, items, subtotal, tax, discount, total, notes, ai_summary, status, created_at
                   FROM orders WHERE id=$1`
	var (
		o     model.Order
		items []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.BusinessID, &o.TableID, &items,
		&o.Subtotal, &o.Tax, &o.Discount, &o.Total,
		&o.Notes, &o.AISummary, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, string(status), orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SinkConfigRepository implementation ---

func (r *sinkConfigRepository) PrinterConfig(ctx context.Context, businessID string) (*model.PrinterConfig, error) {
	const query = `SELECT enabled, transport, endpoint, payload_type, headers, COALESCE(port, 0)
                   FROM printer_configs WHERE business_id=$1`
	var (
		cfg     model.PrinterConfig
		headers []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, businessID).Scan(
		&cfg.Enabled, &cfg.Transport, &cfg.Endpoint, &cfg.Payload, &headers, &cfg.Port,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(headers, &cfg.Headers); err != nil {
		return nil, fmt.Errorf("decode printer headers: %w", err)
	}
	return &cfg, nil
}

func (r *sinkConfigRepository) SavePrinterConfig(ctx context.Context, businessID string, cfg *model.PrinterConfig) error {
	headers, err := encodeHeaders(cfg.Headers)
	if err != nil {
		return err
	}
	const query = `INSERT INTO printer_configs (business_id, enabled, transport, endpoint, payload_type, headers, port, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, 0), NOW())
                   ON CONFLICT (business_id) DO UPDATE
                   SET enabled=EXCLUDED.enabled, transport=EXCLUDED.transport, endpoint=EXCLUDED.endpoint,
                       payload_type=EXCLUDED.payload_type, headers=EXCLUDED.headers, port=EXCLUDED.port, updated_at=NOW()`
	_, err = r.storage.pool.Exec(ctx, query,
		businessID, cfg.Enabled, string(cfg.Transport), cfg.Endpoint, string(cfg.Payload), headers, cfg.Port,
	)
	return err
}

func (r *sinkConfigRepository) PosConfig(ctx context.Context, businessID string) (*model.PosConfig, error) {
	const query = `SELECT enabled, provider, endpoint, method, headers, timeout_ms
                   FROM pos_configs WHERE business_id=$1`
	var (
		cfg     model.PosConfig
		headers []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, businessID).Scan(
		&cfg.Enabled, &cfg.Provider, &cfg.Endpoint, &cfg.Method, &headers, &cfg.TimeoutMs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(headers, &cfg.Headers); err != nil {
		return nil, fmt.Errorf("decode pos headers: %w", err)
	}
	return &cfg, nil
}

func (r *sinkConfigRepository) SavePosConfig(ctx context.Context, businessID string, cfg *model.PosConfig) error {
	headers, err := encodeHeaders(cfg.Headers)
	if err != nil {
		return err
	}
	const query = `INSERT INTO pos_configs (business_id, enabled, provider, endpoint, method, headers, timeout_ms, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
                   ON CONFLICT (business_id) DO UPDATE
                   SET enabled=EXCLUDED.enabled, provider=EXCLUDED.provider, endpoint=EXCLUDED.endpoint,
                       method=EXCLUDED.method, headers=EXCLUDED.headers, timeout_ms=EXCLUDED.timeout_ms, updated_at=NOW()`
	_, err = r.storage.pool.Exec(ctx, query,
		businessID, cfg.Enabled, cfg.Provider, cfg.Endpoint, cfg.Method, headers, cfg.TimeoutMs,
	)
	return err
}

func encodeHeaders(headers map[string]string) (string, error) {
	if headers == nil {
		headers = map[string]string{}
	}
	data, err := json.Marshal(headers)
	if err != nil {
		return "", fmt.Errorf("encode headers: %w", err)
	}
	return string(data), nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
