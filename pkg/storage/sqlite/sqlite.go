package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const timestampFormat = "2006-01-02 15:04:05"

type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new sqlite database given a path to the database file.
// Foreign keys are enabled so deleting a media server removes its statistics.
func New(ctx context.Context, filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", dsn(filePath))
	if err != nil {
		return nil, err
	}

	// sqlite only allows one writer and an in-memory database exists per connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLite{
		db: db,
	}, nil
}

func dsn(filePath string) string {
	if strings.Contains(filePath, "?") {
		return filePath + "&_foreign_keys=on"
	}
	return filePath + "?_foreign_keys=on"
}

// RunMigrations applies any pending schema migrations
func (s *SQLite) RunMigrations(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := runMigrations(s.db)
	if err != nil {
		return err
	}

	version, dirty, err := s.GetMigrationVersion()
	if err != nil {
		return err
	}
	log.Debug("database migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}

func whereAll(where []sqlite.BoolExpression) sqlite.BoolExpression {
	if len(where) == 1 {
		return where[0]
	}
	return sqlite.AND(where...)
}
