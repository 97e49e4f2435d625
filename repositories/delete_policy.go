// File: /repositories/delete_policy.go
package repositories

import (
	"time"

	"gorm.io/gorm"
)

// DeleteAction is what happens to a child reference when its parent
// row is deleted.
type DeleteAction int

const (
	// Cascade removes the child row together with the parent.
	Cascade DeleteAction = iota
	// Restrict rejects the parent delete while the child exists.
	Restrict
	// SetNull keeps the child row and nullifies its reference.
	SetNull
)

// Reference is one foreign key pointing at a parent table.
type Reference struct {
	Table    string
	Column   string
	OnDelete DeleteAction
}

// referencesOf declares every foreign key of the schema, keyed by the
// parent table. The generic delete routine below consults this instead
// of per-entity delete code, so the cascade/restrict/nullify rules
// live in exactly one place. The same actions are also present as FK
// clauses in the DDL, so the database rejects anything this layer
// would miss under concurrent writers.
var referencesOf = map[string][]Reference{
	"motor_vehicles": {
		{Table: "sales", Column: "vehicle_id", OnDelete: Restrict},
		{Table: "cars", Column: "vehicle_id", OnDelete: Cascade},
		{Table: "motorcycles", Column: "vehicle_id", OnDelete: Cascade},
		{Table: "vehicle_images", Column: "vehicle_id", OnDelete: Cascade},
		{Table: "messages", Column: "vehicle_id", OnDelete: SetNull},
	},
	"cars": {
		{Table: "car_items", Column: "car_id", OnDelete: Cascade},
	},
	"motorcycles":    nil,
	"vehicle_images": nil,
	"car_items":      nil,
	"addresses": {
		{Table: "employees", Column: "address_id", OnDelete: SetNull},
		{Table: "clients", Column: "address_id", OnDelete: SetNull},
	},
	"employees": {
		{Table: "sales", Column: "employee_id", OnDelete: Restrict},
		{Table: "users", Column: "employee_id", OnDelete: Cascade},
		{Table: "messages", Column: "responsible_id", OnDelete: SetNull},
	},
	"clients": {
		{Table: "sales", Column: "client_id", OnDelete: Restrict},
	},
	"users":    nil,
	"sales":    nil,
	"messages": nil,
}

// primaryKeyOf names the single-column primary key used to walk
// cascade chains. Tables with a composite key (car_items) are cascade
// leaves and are absent here.
var primaryKeyOf = map[string]string{
	"motor_vehicles": "id",
	"cars":           "vehicle_id",
	"motorcycles":    "vehicle_id",
	"vehicle_images": "id",
	"addresses":      "id",
	"employees":      "id",
	"clients":        "id",
	"users":          "id",
	"sales":          "id",
	"messages":       "id",
}

// tablesWithUpdatedAt marks the tables whose rows carry an updated_at
// column that must be refreshed when a reference is nullified.
var tablesWithUpdatedAt = map[string]bool{
	"employees": true,
	"clients":   true,
	"messages":  true,
}

// RestrictClosure returns the tables that can block deletion of a row
// in table, including restrictions reached through cascade children.
// A motor vehicle, for example, is blocked by sales even though its
// car and image rows would cascade.
func RestrictClosure(table string) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(t string)
	walk = func(t string) {
		for _, ref := range referencesOf[t] {
			switch ref.OnDelete {
			case Restrict:
				if !seen[ref.Table] {
					seen[ref.Table] = true
					out = append(out, ref.Table)
				}
			case Cascade:
				walk(ref.Table)
			}
		}
	}
	walk(table)
	return out
}

// deleteWithPolicy removes the row with the given primary key from
// table, applying the declared actions to every reference. All
// restrict checks run before the first mutation, transitively through
// cascade children, so a blocked delete leaves every row in place.
// Must run inside a transaction.
func deleteWithPolicy(tx *gorm.DB, entity, table string, id uint) error {
	ids := []uint{id}

	var count int64
	if err := tx.Table(table).Where(primaryKeyOf[table]+" IN ?", ids).Count(&count).Error; err != nil {
		return translateError(entity, id, err)
	}
	if count == 0 {
		return &NotFoundError{Entity: entity, ID: id}
	}

	if err := checkRestricted(tx, entity, table, id, ids); err != nil {
		return err
	}
	if err := applyDelete(tx, table, ids); err != nil {
		return translateError(entity, id, err)
	}
	return nil
}

// checkRestricted walks the cascade graph below (table, ids) and fails
// on the first populated Restrict reference.
func checkRestricted(tx *gorm.DB, entity, table string, rootID uint, ids []uint) error {
	for _, ref := range referencesOf[table] {
		switch ref.OnDelete {
		case Restrict:
			var n int64
			if err := tx.Table(ref.Table).Where(ref.Column+" IN ?", ids).Count(&n).Error; err != nil {
				return translateError(entity, rootID, err)
			}
			if n > 0 {
				return &RestrictedError{Entity: entity, ID: rootID, ReferencedBy: ref.Table}
			}
		case Cascade:
			childIDs, err := childKeys(tx, ref, ids)
			if err != nil {
				return translateError(entity, rootID, err)
			}
			if len(childIDs) > 0 {
				if err := checkRestricted(tx, entity, ref.Table, rootID, childIDs); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// applyDelete nullifies SetNull references, removes cascade children
// depth-first and finally deletes the rows themselves.
func applyDelete(tx *gorm.DB, table string, ids []uint) error {
	for _, ref := range referencesOf[table] {
		switch ref.OnDelete {
		case SetNull:
			updates := map[string]interface{}{ref.Column: nil}
			if tablesWithUpdatedAt[ref.Table] {
				updates["updated_at"] = time.Now()
			}
			if err := tx.Table(ref.Table).Where(ref.Column+" IN ?", ids).Updates(updates).Error; err != nil {
				return err
			}
		case Cascade:
			childIDs, err := childKeys(tx, ref, ids)
			if err != nil {
				return err
			}
			if len(childIDs) > 0 {
				if err := applyDelete(tx, ref.Table, childIDs); err != nil {
					return err
				}
			}
			// Cascade leaves without a walkable key are removed directly.
			if primaryKeyOf[ref.Table] == "" {
				if err := tx.Table(ref.Table).Where(ref.Column+" IN ?", ids).Delete(nil).Error; err != nil {
					return err
				}
			}
		}
	}
	return tx.Table(table).Where(primaryKeyOf[table]+" IN ?", ids).Delete(nil).Error
}

// childKeys returns the primary keys of the rows in ref.Table that
// reference the given parent ids, or nil for composite-key leaves.
func childKeys(tx *gorm.DB, ref Reference, ids []uint) ([]uint, error) {
	pk := primaryKeyOf[ref.Table]
	if pk == "" {
		return nil, nil
	}
	var childIDs []uint
	err := tx.Table(ref.Table).Where(ref.Column+" IN ?", ids).Pluck(pk, &childIDs).Error
	return childIDs, err
}
