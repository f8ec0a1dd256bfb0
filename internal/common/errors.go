package common

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Domain error taxonomy. Handlers branch on these with errors.Is/errors.As to
// choose a response status; services wrap them with context via fmt.Errorf.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrUnauthorized    = errors.New("not allowed")
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports the first violated input rule.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// MySQL server error numbers for constraint violations.
const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

// TranslateDBError maps storage-layer failures onto the domain taxonomy.
// Anything unrecognized passes through untouched and surfaces as a generic
// failure.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("record %w", ErrNotFound)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", ErrConflict, mysqlErr.Message)
		case mysqlNoReferencedRow:
			return fmt.Errorf("referenced record %w: %s", ErrNotFound, mysqlErr.Message)
		}
	}
	return err
}
