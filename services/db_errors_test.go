package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"hostel-backend/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"gorm duplicate", gorm.ErrDuplicatedKey, ErrConflict},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, ErrConflict},
		{"postgres duplicate", &pgconn.PgError{Code: "23505"}, ErrConflict},
		{"sqlite duplicate", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrConflict},
		{"mysql foreign key", &mysql.MySQLError{Number: 1452}, ErrValidation},
		{"postgres foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), ErrValidation},
		{"mysql check", &mysql.MySQLError{Number: 3819}, ErrValidation},
		{"sqlite check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, ErrValidation},
		{"guard", &models.GuardError{Table: "mess_plans", Column: "cost"}, ErrValidation},
		{"already classified", notFound("Room"), ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tc.err, "duplicate"), tc.kind)
		})
	}

	assert.Equal(t, "duplicate", Message(classify(gorm.ErrDuplicatedKey, "duplicate")))
	assert.Nil(t, classify(nil, ""))

	other := errors.New("connection reset")
	assert.Same(t, other, classify(other, ""))
}

func TestLookup(t *testing.T) {
	err := lookup(gorm.ErrRecordNotFound, "Bill")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Bill not found", Message(err))
	assert.Nil(t, lookup(nil, "Bill"))
}
