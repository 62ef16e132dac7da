package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")
	foreignKey := errors.Wrap(&pgconn.PgError{Code: pgForeignKeyViolation}, "delete")
	check := &pgconn.PgError{Code: pgCheckViolation}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(check))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(errors.New("connection reset")))
}

func TestRejectedValue(t *testing.T) {
	assert.True(t, isRejectedValue(errors.Wrap(&pgconn.PgError{Code: pgNumericOutOfRange}, "insert order")))
	assert.True(t, isRejectedValue(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, isRejectedValue(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.False(t, isRejectedValue(errors.New("connection reset")))
}
