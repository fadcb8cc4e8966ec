package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, UniqueViolation, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Equal(t, Unclassified, c.Classify(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, Unclassified, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.Equal(t, UniqueViolation, c.Classify(unique))
	assert.Equal(t, UniqueViolation, c.Classify(fmt.Errorf("wrapped: %w", unique)))
	assert.Equal(t, Unclassified, c.Classify(notNull))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, Unclassified, c.Classify(nil))
}
