// File: /repositories/delete_policy_test.go
package repositories

import (
	"testing"
)

func TestRestrictClosureVehicle(t *testing.T) {
	// Sale history blocks a vehicle delete even though cars, items and
	// images would cascade away cleanly.
	got := RestrictClosure("motor_vehicles")
	if len(got) != 1 || got[0] != "sales" {
		t.Fatalf("expected [sales], got %v", got)
	}
}

func TestRestrictClosureEmployee(t *testing.T) {
	got := RestrictClosure("employees")
	if len(got) != 1 || got[0] != "sales" {
		t.Fatalf("expected [sales], got %v", got)
	}
}

func TestRestrictClosureClient(t *testing.T) {
	got := RestrictClosure("clients")
	if len(got) != 1 || got[0] != "sales" {
		t.Fatalf("expected [sales], got %v", got)
	}
}

func TestRestrictClosureUnblockedTables(t *testing.T) {
	// Addresses only nullify, never restrict. Leaves have no children
	// at all.
	for _, table := range []string{"addresses", "cars", "sales", "messages", "car_items", "vehicle_images", "users"} {
		if got := RestrictClosure(table); len(got) != 0 {
			t.Errorf("expected no blockers for %s, got %v", table, got)
		}
	}
}

func TestReferencesCoverEveryTable(t *testing.T) {
	// Every table that appears as a child must itself be declared, so
	// cascade walks never fall off the map silently.
	for parent, refs := range referencesOf {
		if _, ok := primaryKeyOf[parent]; !ok && parent != "car_items" {
			t.Errorf("table %s has no primary key declared", parent)
		}
		for _, ref := range refs {
			if _, ok := referencesOf[ref.Table]; !ok {
				t.Errorf("child table %s of %s is not declared", ref.Table, parent)
			}
		}
	}
}

func TestVehicleDeletePolicy(t *testing.T) {
	actions := map[string]DeleteAction{}
	for _, ref := range referencesOf["motor_vehicles"] {
		actions[ref.Table] = ref.OnDelete
	}

	if actions["sales"] != Restrict {
		t.Error("sales must restrict vehicle deletes")
	}
	if actions["cars"] != Cascade || actions["motorcycles"] != Cascade || actions["vehicle_images"] != Cascade {
		t.Error("specialization and image rows must cascade with the vehicle")
	}
	if actions["messages"] != SetNull {
		t.Error("messages must keep their row and drop the vehicle reference")
	}
}

func TestEmployeeDeletePolicy(t *testing.T) {
	actions := map[string]DeleteAction{}
	for _, ref := range referencesOf["employees"] {
		actions[ref.Table] = ref.OnDelete
	}

	if actions["users"] != Cascade {
		t.Error("the login account must cascade with its employee")
	}
	if actions["messages"] != SetNull {
		t.Error("assigned messages must survive an employee delete unassigned")
	}
	if actions["sales"] != Restrict {
		t.Error("sale history must block employee deletes")
	}
}

func TestAddressDeletePolicy(t *testing.T) {
	for _, ref := range referencesOf["addresses"] {
		if ref.OnDelete != SetNull {
			t.Errorf("address reference from %s must nullify, got %v", ref.Table, ref.OnDelete)
		}
		if !tablesWithUpdatedAt[ref.Table] {
			t.Errorf("%s rows must refresh updated_at when nullified", ref.Table)
		}
	}
}

func TestCarItemsAreCompositeKeyLeaf(t *testing.T) {
	if _, ok := primaryKeyOf["car_items"]; ok {
		t.Fatal("car_items has a composite key and must not be walkable")
	}
	if refs := referencesOf["car_items"]; len(refs) != 0 {
		t.Fatalf("car_items must be a leaf, got children %v", refs)
	}
}
