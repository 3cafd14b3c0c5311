package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskmanager/internal/config"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default.
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverMySQL:
		return connectMySQL(conf)
	case config.DriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect(config.DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens path (":memory:" allowed) on a single connection, which
// keeps an in-memory database alive and serializes writers.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(config.DriverSQLite, path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// EnsureSchema creates the tasks table for the connected driver when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	content, err := schemaFiles.ReadFile("schema/" + db.DriverName() + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for driver %q: %w", db.DriverName(), err)
	}

	for _, statement := range strings.Split(string(content), ";") {
		if strings.TrimSpace(statement) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	return nil
}
