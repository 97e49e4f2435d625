// File: /repositories/errors.go

// Package repositories owns every read and write against the MySQL
// store and the referential-integrity rules between the tables. The
// error types below let controllers tell apart a missing row, a broken
// uniqueness or reference constraint, a delete blocked by sale history
// and transient lock contention without inspecting driver errors.
package repositories

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrBusy signals transient lock contention. The operation performed
// no mutation and can be retried.
var ErrBusy = errors.New("store busy, retry")

// NotFoundError is returned when the addressed row does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConstraintError is returned when an insert or update breaks a
// uniqueness invariant, references a missing row, or carries an
// invalid value.
type ConstraintError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ConstraintError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
}

// RestrictedError is returned when a delete is rejected because sale
// history still references the row, directly or through a cascade
// child. Nothing was mutated.
type RestrictedError struct {
	Entity       string
	ID           uint
	ReferencedBy string
}

func (e *RestrictedError) Error() string {
	return fmt.Sprintf("%s %d cannot be deleted: referenced by %s", e.Entity, e.ID, e.ReferencedBy)
}

// MySQL server error numbers this layer cares about.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// translateError converts gorm and MySQL driver errors to the typed
// errors of this package. Errors it does not recognize pass through
// unchanged.
func translateError(entity string, id uint, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return &ConstraintError{Entity: entity, Reason: "duplicate entry"}
		case mysqlErrNoReferencedRow:
			return &ConstraintError{Entity: entity, Reason: "referenced row does not exist"}
		case mysqlErrRowIsReferenced:
			return &RestrictedError{Entity: entity, ID: id, ReferencedBy: "dependent rows"}
		case mysqlErrLockWaitTimeout, mysqlErrDeadlock:
			return fmt.Errorf("%w: %v", ErrBusy, err)
		}
	}
	return err
}
