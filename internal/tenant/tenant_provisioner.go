package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Provisioner creates the physical database for a new tenant.
type Provisioner interface {
	CreateDatabase(ctx context.Context, dbName string) error
}

type postgresProvisioner struct {
	db *gorm.DB
}

// NewPostgresProvisioner issues CREATE DATABASE over the central connection.
func NewPostgresProvisioner(central *gorm.DB) Provisioner {
	return &postgresProvisioner{db: central}
}

func (p *postgresProvisioner) CreateDatabase(ctx context.Context, dbName string) error {
	// dbName comes from Router.DBName and only holds [a-z0-9_]
	err := p.db.WithContext(ctx).Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, dbName)).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P04" {
		return nil
	}
	return err
}
