// File: /repositories/errors_test.go
package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestTranslateRecordNotFound(t *testing.T) {
	err := translateError("client", 7, gorm.ErrRecordNotFound)

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Entity != "client" || nf.ID != 7 {
		t.Fatalf("wrong identity in error: %v", nf)
	}
}

func TestTranslateDuplicateEntry(t *testing.T) {
	driverErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'email'"}
	err := translateError("user", 0, driverErr)

	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}
	if ce.Entity != "user" {
		t.Fatalf("wrong entity: %s", ce.Entity)
	}
}

func TestTranslateMissingReferencedRow(t *testing.T) {
	driverErr := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	err := translateError("sale", 0, driverErr)

	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}
}

func TestTranslateRowIsReferenced(t *testing.T) {
	driverErr := &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}
	err := translateError("client", 3, driverErr)

	var re *RestrictedError
	if !errors.As(err, &re) {
		t.Fatalf("expected RestrictedError, got %v", err)
	}
	if re.ID != 3 {
		t.Fatalf("wrong id: %d", re.ID)
	}
}

func TestTranslateLockContention(t *testing.T) {
	for _, number := range []uint16{1205, 1213} {
		driverErr := &mysql.MySQLError{Number: number, Message: "lock"}
		err := translateError("sale", 1, driverErr)
		if !errors.Is(err, ErrBusy) {
			t.Errorf("error %d: expected ErrBusy, got %v", number, err)
		}
	}
}

func TestTranslateWrappedDriverError(t *testing.T) {
	// Driver errors arrive wrapped by the ORM layer; errors.As must
	// still find them.
	wrapped := fmt.Errorf("create failed: %w", &mysql.MySQLError{Number: 1062})
	var ce *ConstraintError
	if !errors.As(translateError("user", 0, wrapped), &ce) {
		t.Fatal("expected ConstraintError through the wrap")
	}
}

func TestTranslatePassesUnknownThrough(t *testing.T) {
	boom := errors.New("boom")
	if got := translateError("sale", 1, boom); got != boom {
		t.Fatalf("unknown error must pass through, got %v", got)
	}
	if got := translateError("sale", 1, nil); got != nil {
		t.Fatalf("nil must stay nil, got %v", got)
	}
}

func TestErrorMessages(t *testing.T) {
	nf := &NotFoundError{Entity: "employee", ID: 12}
	if nf.Error() != "employee 12 not found" {
		t.Errorf("unexpected message %q", nf.Error())
	}

	ce := &ConstraintError{Entity: "user", Field: "email", Reason: "duplicate entry"}
	if ce.Error() != "user.email: duplicate entry" {
		t.Errorf("unexpected message %q", ce.Error())
	}

	re := &RestrictedError{Entity: "client", ID: 4, ReferencedBy: "sales"}
	if re.Error() != "client 4 cannot be deleted: referenced by sales" {
		t.Errorf("unexpected message %q", re.Error())
	}
}
