package db

import (
	"fmt"
	"regexp"

	"riftstats/internal/config"
)

// Dialect selects the placeholder syntax. Statements are written with $N.
type Dialect int

const (
	// Postgres binds $1, $2, ...
	Postgres Dialect = iota
	// SQLite binds ?1, ?2, ...
	SQLite
)

var placeholder = regexp.MustCompile(`\$(\d+)`)

func (d Dialect) rebind(query string) string {
	if d == SQLite {
		return placeholder.ReplaceAllString(query, "?$1")
	}
	return query
}

func dialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPgx, config.DriverPostgres:
		return Postgres, nil
	case config.DriverSQLite, config.DriverLibSQL:
		return SQLite, nil
	}
	return 0, &Error{Op: "Open", Kind: KindConnection, Err: fmt.Errorf("unsupported driver %q", driver)}
}
