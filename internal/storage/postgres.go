package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresStorage implements Storage using PostgreSQL.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL storage.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-storage-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// StoreResolution inserts a resolution record into PostgreSQL.
func (p *PostgresStorage) StoreResolution(ctx context.Context, rec *ResolutionRecord) error {
	query := `
		INSERT INTO resolutions (
			id, asset, interval_label, window_start, found,
			market_slug, market_question, up_token_id, down_token_id,
			up_price, down_price, candidates_tried, last_error,
			duration_ms, resolved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
	`

	_, err := p.db.ExecContext(ctx, query,
		rec.ID,
		rec.Asset,
		rec.Interval,
		rec.WindowStart,
		rec.Found,
		rec.MarketSlug,
		rec.MarketQuestion,
		rec.UpTokenID,
		rec.DownTokenID,
		nullFloat(rec.UpPrice),
		nullFloat(rec.DownPrice),
		rec.CandidatesTried,
		rec.LastError,
		rec.Duration.Milliseconds(),
		rec.ResolvedAt,
	)

	if err != nil {
		return fmt.Errorf("insert resolution: %w", err)
	}

	p.logger.Debug("resolution-stored",
		zap.String("resolution-id", rec.ID),
		zap.String("asset", rec.Asset),
		zap.Bool("found", rec.Found))

	return nil
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	p.logger.Info("closing-postgres-storage")
	return p.db.Close()
}
