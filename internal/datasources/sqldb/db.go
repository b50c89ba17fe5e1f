package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type Driver string

const (
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
)

const mysqlParamStr string = "?parseTime=true"

// Flavor returns the SQL dialect the query builder should emit for the driver.
func (d Driver) Flavor() (sqlbuilder.Flavor, error) {
	switch d {
	case DriverMySQL:
		return sqlbuilder.MySQL, nil
	case DriverPostgres:
		return sqlbuilder.PostgreSQL, nil
	default:
		return 0, fmt.Errorf("unknown SQL driver: %s", d)
	}
}

func Connect(ctx context.Context, driver Driver, uri string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	switch driver {
	case DriverMySQL:
		db, err = sql.Open("mysql", uri+mysqlParamStr)
	case DriverPostgres:
		db, err = sql.Open("pgx", uri)
	default:
		return nil, fmt.Errorf("unknown SQL driver: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to %s DB: %w", driver, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking %s DB connection: %w", driver, err)
	}

	return db, nil
}
