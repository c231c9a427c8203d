package db

import (
	_ "embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/Jupiter-12/kanban/internal/config"
)

//go:embed schema.sql
var schemaSQL string

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
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

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate applies the embedded schema. Every statement is idempotent, so it
// runs on each startup. Requires multiStatements=true in the DSN.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}
