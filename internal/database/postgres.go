package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northflank-guides/go-with-postgres/internal/models"
)

type PostgresDBManager struct {
	Pool *pgxpool.Pool
}

func NewPostgresDBManager(ctx context.Context, connStr string) (*PostgresDBManager, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	log.Println("Database connection established")
	return &PostgresDBManager{Pool: pool}, nil
}

// CreateVisitorsTable bootstraps the visitors table. Safe to run on every
// startup.
func (m *PostgresDBManager) CreateVisitorsTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS visitors (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255),
		date TIMESTAMP NOT NULL DEFAULT NOW()
	);`

	_, err := m.Pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("error creating visitors table: %v", err)
	}

	return nil
}

func (m *PostgresDBManager) GetAllVisitors(ctx context.Context) ([]models.Visitor, error) {
	query := `
	SELECT id, name, date
	FROM visitors
	ORDER BY id;`

	rows, err := m.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying visitors: %w", err)
	}

	return scanVisitors(rows)
}

func (m *PostgresDBManager) GetVisitorsByName(ctx context.Context, name string) ([]models.Visitor, error) {
	query := `
	SELECT id, name, date
	FROM visitors
	WHERE name = $1
	ORDER BY id;`

	rows, err := m.Pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("error querying visitors by name: %w", err)
	}

	return scanVisitors(rows)
}

func (m *PostgresDBManager) InsertVisitor(ctx context.Context, name string) error {
	query := `
	INSERT INTO visitors (name)
	VALUES ($1);`

	_, err := m.Pool.Exec(ctx, query, name)
	if err != nil {
		return fmt.Errorf("error inserting visitor: %w", err)
	}

	return nil
}

// scanVisitors drains rows into a slice. A query matching nothing yields an
// empty slice, not an error.
func scanVisitors(rows pgx.Rows) ([]models.Visitor, error) {
	defer rows.Close()

	visitors := make([]models.Visitor, 0)
	for rows.Next() {
		var visitor models.Visitor
		if err := rows.Scan(&visitor.ID, &visitor.Name, &visitor.Date); err != nil {
			return nil, fmt.Errorf("error scanning visitor row: %w", err)
		}
		visitors = append(visitors, visitor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return visitors, nil
}

func (m *PostgresDBManager) Close() error {
	if m.Pool != nil {
		m.Pool.Close()
	}
	return nil
}
