package table

import (
	"testing"

	"relstore/pkg/catalog/schema"
	"relstore/pkg/dberr"
	"relstore/pkg/index"
	"relstore/pkg/primitives"
	"relstore/pkg/types"
)

// usersTable builds the users{id:Int, name:String, active:Bool} fixture.
func usersTable(t *testing.T) *Table {
	t.Helper()
	s, err := schema.NewSchema("users", []schema.ColumnMetadata{
		{Name: "id", FieldType: types.IntType, Position: 0},
		{Name: "name", FieldType: types.StringType, Position: 1},
		{Name: "active", FieldType: types.BoolType, Position: 2},
	})
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}
	return New("users", s)
}

// seedUsers inserts the three canonical user rows.
func seedUsers(t *testing.T, tbl *Table) {
	t.Helper()
	rows := []map[string]any{
		{"id": 1, "name": "A", "active": true},
		{"id": 2, "name": "B", "active": false},
		{"id": 3, "name": "C", "active": true},
	}
	for _, row := range rows {
		if _, err := tbl.Insert(row); err != nil {
			t.Fatalf("Failed to seed row %v: %v", row, err)
		}
	}
}

// itemsTable builds the items{id:Int, price:Float} fixture with three rows.
func itemsTable(t *testing.T) *Table {
	t.Helper()
	s, err := schema.NewSchema("items", []schema.ColumnMetadata{
		{Name: "id", FieldType: types.IntType, Position: 0},
		{Name: "price", FieldType: types.FloatType, Position: 1},
	})
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}

	tbl := New("items", s)
	for _, row := range []map[string]any{
		{"id": 1, "price": 10.0},
		{"id": 2, "price": 5.0},
		{"id": 3, "price": 20.0},
	} {
		if _, err := tbl.Insert(row); err != nil {
			t.Fatalf("Failed to seed row %v: %v", row, err)
		}
	}
	return tbl
}

func TestInsert_AssignsDenseRowIDs(t *testing.T) {
	tbl := usersTable(t)

	for want := primitives.RowID(1); want <= 3; want++ {
		rid, err := tbl.Insert(map[string]any{"id": int(want), "name": "x", "active": true})
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if rid != want {
			t.Errorf("Insert returned row id %d, want %d", rid, want)
		}
	}

	if hw := tbl.HighWater(); hw != 3 {
		t.Errorf("HighWater = %d, want 3", hw)
	}
	if n := tbl.Count(); n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestInsert_MissingColumnsBecomeNull(t *testing.T) {
	tbl := usersTable(t)

	if _, err := tbl.Insert(map[string]any{"id": 1}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	rows, err := tbl.Select(nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0]["name"].Type() != types.NullType {
		t.Errorf("Absent column should be NULL, got %v", rows[0]["name"])
	}
}

func TestInsert_SchemaMismatch(t *testing.T) {
	tbl := usersTable(t)

	_, err := tbl.Insert(map[string]any{"id": "not an int"})
	if !dberr.IsSchemaMismatch(err) {
		t.Fatalf("Expected SchemaMismatch, got %v", err)
	}
	if tbl.Count() != 0 {
		t.Errorf("Failed insert must not change row count, got %d", tbl.Count())
	}

	// A follow-up valid insert receives the next row id as if the failed
	// insert never happened.
	rid, err := tbl.Insert(map[string]any{"id": 1, "name": "A", "active": true})
	if err != nil {
		t.Fatalf("Valid insert failed: %v", err)
	}
	if rid != 1 {
		t.Errorf("Row id after failed insert = %d, want 1", rid)
	}
}

func TestInsert_UnknownColumn(t *testing.T) {
	tbl := usersTable(t)

	_, err := tbl.Insert(map[string]any{"id": 1, "nickname": "x"})
	if !dberr.IsSchemaMismatch(err) {
		t.Fatalf("Expected SchemaMismatch for unknown column, got %v", err)
	}
}

func TestInsert_NullValueAllowedInTypedColumn(t *testing.T) {
	tbl := usersTable(t)

	if _, err := tbl.Insert(map[string]any{"id": nil, "name": "A", "active": true}); err != nil {
		t.Fatalf("Explicit NULL should be accepted in any column: %v", err)
	}
}

func TestInsertBatch_AllOrNothing(t *testing.T) {
	tbl := usersTable(t)

	_, err := tbl.InsertBatch([]map[string]any{
		{"id": 1, "name": "A", "active": true},
		{"id": "bad", "name": "B", "active": false},
	})
	if !dberr.IsSchemaMismatch(err) {
		t.Fatalf("Expected SchemaMismatch, got %v", err)
	}
	if tbl.Count() != 0 {
		t.Errorf("Failed batch must leave the table untouched, got %d rows", tbl.Count())
	}

	ids, err := tbl.InsertBatch([]map[string]any{
		{"id": 1, "name": "A", "active": true},
		{"id": 2, "name": "B", "active": false},
	})
	if err != nil {
		t.Fatalf("Valid batch failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("Batch ids = %v, want [1 2]", ids)
	}
}

func TestListIndexes(t *testing.T) {
	tbl := usersTable(t)
	seedUsers(t, tbl)

	if err := tbl.CreateIndex("name", index.KindHash); err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}
	if err := tbl.CreateIndex("active", index.KindHash); err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}

	got := tbl.ListIndexes()
	if len(got) != 2 || got[0] != "active" || got[1] != "name" {
		t.Errorf("ListIndexes = %v, want [active name]", got)
	}
}
