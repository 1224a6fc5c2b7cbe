package table

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"relstore/pkg/types"
)

func TestRows_MarshalJSON(t *testing.T) {
	rows := Rows{
		{
			"id":    types.NewIntField(1),
			"price": types.NewFloatField(2.5),
			"name":  types.NewStringField("a"),
			"ok":    types.NewBoolField(true),
			"blob":  types.NewBytesField([]byte{1, 2}),
			"note":  types.Null,
		},
	}

	data, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("Expected 1 object, got %d", len(decoded))
	}

	obj := decoded[0]
	if obj["id"] != float64(1) || obj["price"] != 2.5 || obj["name"] != "a" || obj["ok"] != true {
		t.Errorf("Unexpected scalars: %v", obj)
	}
	if obj["note"] != nil {
		t.Errorf("NULL should render as null, got %v", obj["note"])
	}
	if !strings.Contains(string(data), `"blob"`) {
		t.Errorf("Bytes column missing from %s", data)
	}
}

func TestRows_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(Rows{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Empty rows = %s, want []", data)
	}
}
