package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Sentinel errors matched with errors.Is against a *Error
var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConnection          = errors.New("connection failure")
)

// Kind classifies a store failure
type Kind int

const (
	// KindStatement covers malformed SQL, type mismatches and anything unclassified
	KindStatement Kind = iota
	KindNotFound
	KindConstraint
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConstraint:
		return "constraint violation"
	case KindConnection:
		return "connection failure"
	default:
		return "statement failure"
	}
}

// Error is returned by every Store operation that fails
type Error struct {
	Op   string // store method, e.g. "InsertStat"
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match the sentinel for the error's kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrConstraintViolation:
		return e.Kind == KindConstraint
	case ErrConnection:
		return e.Kind == KindConnection
	}
	return false
}

func newError(op string, err error) *Error {
	return &Error{Op: op, Kind: classify(err), Err: err}
}

// classify maps a driver error onto a Kind
func classify(err error) Kind {
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return KindConnection
	}

	// SQLSTATE class 23 is integrity constraint violation, class 08 connection exception
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return KindConnection
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			return KindConstraint
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
			return KindConnection
		}
		return KindStatement
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}

	// libsql reports remote errors as plain strings
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "constraint failed"), strings.Contains(msg, "sqlite_constraint"):
		return KindConstraint
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "connection reset"):
		return KindConnection
	}
	return KindStatement
}

func classifySQLState(code string) Kind {
	switch {
	case strings.HasPrefix(code, "23"):
		return KindConstraint
	case strings.HasPrefix(code, "08"):
		return KindConnection
	}
	return KindStatement
}
