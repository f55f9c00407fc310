package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/pkg/storage"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/table"
)

// CreateMediaServer stores a new media server in the registry
func (s *SQLite) CreateMediaServer(ctx context.Context, server model.MediaServer) (int64, error) {
	stmt := table.MediaServer.
		INSERT(table.MediaServer.AllColumns.Except(table.MediaServer.ID, table.MediaServer.CreatedAt)).
		MODEL(server)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create media server: %w", err)
	}

	return result.LastInsertId()
}

// GetMediaServer gets a media server by id
func (s *SQLite) GetMediaServer(ctx context.Context, id int64) (*model.MediaServer, error) {
	stmt := table.MediaServer.
		SELECT(table.MediaServer.AllColumns).
		FROM(table.MediaServer).
		WHERE(table.MediaServer.ID.EQ(sqlite.Int64(id)))

	server := new(model.MediaServer)
	err := stmt.QueryContext(ctx, s.db, server)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media server: %w", err)
	}

	return server, nil
}

// ListMediaServers lists the registered media servers ordered by id
func (s *SQLite) ListMediaServers(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.MediaServer, error) {
	stmt := table.MediaServer.
		SELECT(table.MediaServer.AllColumns).
		FROM(table.MediaServer)

	if len(where) > 0 {
		stmt = stmt.WHERE(whereAll(where))
	}

	servers := make([]*model.MediaServer, 0)
	err := stmt.ORDER_BY(table.MediaServer.ID.ASC()).QueryContext(ctx, s.db, &servers)
	if err != nil {
		return nil, fmt.Errorf("failed to list media servers: %w", err)
	}

	return servers, nil
}

// DeleteMediaServer removes a media server. Its statistics and snapshots are removed with it.
func (s *SQLite) DeleteMediaServer(ctx context.Context, id int64) error {
	stmt := table.MediaServer.
		DELETE().
		WHERE(table.MediaServer.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete media server: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}
