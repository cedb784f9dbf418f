package database

import (
	"context"

	"github.com/northflank-guides/go-with-postgres/internal/models"
)

type DBManager interface {
	CreateVisitorsTable(ctx context.Context) error
	GetAllVisitors(ctx context.Context) ([]models.Visitor, error)
	GetVisitorsByName(ctx context.Context, name string) ([]models.Visitor, error)
	InsertVisitor(ctx context.Context, name string) error
	Close() error
}
