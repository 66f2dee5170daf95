package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate_Nil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}

func TestTranslate_PassThrough(t *testing.T) {
	assert.Equal(t, gorm.ErrRecordNotFound, Translate(gorm.ErrRecordNotFound))

	other := errors.New("connection refused")
	assert.Equal(t, other, Translate(other))

	check := &pq.Error{Code: "23514", Constraint: "chk_hours"}
	assert.Equal(t, error(check), Translate(check))
}

func TestTranslate_PQ(t *testing.T) {
	err := Translate(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "users_email_key", dup.Constraint)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	err = Translate(&pq.Error{Code: "23502", Column: "full_name"})
	var missing *RequiredFieldMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "full_name", missing.Field)

	err = Translate(&pq.Error{Code: "23503", Constraint: "fk_invoice_vendor"})
	assert.ErrorIs(t, err, ErrReferentialIntegrity)
	assert.NotErrorIs(t, err, ErrDuplicateKey)
}

func TestTranslate_PgConn(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_vendor_combo"})
	err := Translate(wrapped)

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "uq_employee_vendor_combo", dup.Constraint)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr, "original driver error stays reachable")
}

func TestTranslate_SQLite(t *testing.T) {
	cases := []struct {
		name     string
		extended sqlite3.ErrNoExtended
		want     error
	}{
		{"unique", sqlite3.ErrConstraintUnique, ErrDuplicateKey},
		{"primary key", sqlite3.ErrConstraintPrimaryKey, ErrDuplicateKey},
		{"not null", sqlite3.ErrConstraintNotNull, ErrRequiredFieldMissing},
		{"foreign key", sqlite3.ErrConstraintForeignKey, ErrReferentialIntegrity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Translate(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: tc.extended})
			assert.ErrorIs(t, err, tc.want)
		})
	}

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	assert.Equal(t, error(busy), Translate(busy))
}

func TestTranslate_AlreadyClassified(t *testing.T) {
	err := Missing("email")
	assert.Same(t, err, Translate(err))
	assert.EqualError(t, err, "required field missing: email")
}
