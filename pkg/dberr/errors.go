// Package dberr maps storage-engine constraint violations onto error kinds
// that callers can branch on without knowing which driver produced them.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// SQLSTATE codes of the integrity_constraint_violation class.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

type DuplicateKeyError struct {
	Constraint string
	Err        error
}

func (e *DuplicateKeyError) Error() string {
	if e.Constraint == "" {
		return ErrDuplicateKey.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateKey, e.Constraint)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }
func (e *DuplicateKeyError) Unwrap() error        { return e.Err }

type RequiredFieldMissingError struct {
	Field string
	Err   error
}

func (e *RequiredFieldMissingError) Error() string {
	if e.Field == "" {
		return ErrRequiredFieldMissing.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRequiredFieldMissing, e.Field)
}

func (e *RequiredFieldMissingError) Is(target error) bool { return target == ErrRequiredFieldMissing }
func (e *RequiredFieldMissingError) Unwrap() error        { return e.Err }

type ReferentialIntegrityError struct {
	Constraint string
	Err        error
}

func (e *ReferentialIntegrityError) Error() string {
	if e.Constraint == "" {
		return ErrReferentialIntegrity.Error()
	}
	return fmt.Sprintf("%s: %s", ErrReferentialIntegrity, e.Constraint)
}

func (e *ReferentialIntegrityError) Is(target error) bool { return target == ErrReferentialIntegrity }
func (e *ReferentialIntegrityError) Unwrap() error        { return e.Err }

// Missing is a shorthand for model validation hooks.
func Missing(field string) error {
	return &RequiredFieldMissingError{Field: field}
}

// Translate classifies err. Errors that are not constraint violations, and
// errors that are already classified, are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrRequiredFieldMissing) || errors.Is(err, ErrReferentialIntegrity) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fromSQLState(string(pqErr.Code), pqErr.Constraint, pqErr.Column, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromSQLState(pgErr.Code, pgErr.ConstraintName, pgErr.ColumnName, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return fromSQLite(liteErr, err)
	}

	return err
}

func fromSQLState(code, constraint, column string, err error) error {
	switch code {
	case codeUniqueViolation:
		return &DuplicateKeyError{Constraint: constraint, Err: err}
	case codeNotNullViolation:
		return &RequiredFieldMissingError{Field: column, Err: err}
	case codeForeignKeyViolation:
		return &ReferentialIntegrityError{Constraint: constraint, Err: err}
	}
	return err
}

func fromSQLite(liteErr sqlite3.Error, err error) error {
	if liteErr.Code != sqlite3.ErrConstraint {
		return err
	}
	// messages look like "UNIQUE constraint failed: users.email"
	detail := ""
	if i := strings.LastIndex(liteErr.Error(), "failed: "); i >= 0 {
		detail = liteErr.Error()[i+len("failed: "):]
	}
	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return &DuplicateKeyError{Constraint: detail, Err: err}
	case sqlite3.ErrConstraintNotNull:
		return &RequiredFieldMissingError{Field: detail, Err: err}
	case sqlite3.ErrConstraintForeignKey:
		return &ReferentialIntegrityError{Err: err}
	}
	return err
}
