package table

import (
	json "github.com/goccy/go-json"

	"relstore/pkg/types"
)

// Row is one query result: a mapping from projected column name to value.
type Row map[string]types.Field

// Rows is an ordered query result set.
type Rows []Row

// MarshalJSON renders the rows as a JSON array of objects with native JSON
// scalars: NULL becomes null, integers and floats numbers, bytes a base64
// string.
func (rs Rows) MarshalJSON() ([]byte, error) {
	out := make([]map[string]any, len(rs))
	for i, row := range rs {
		obj := make(map[string]any, len(row))
		for name, field := range row {
			obj[name] = fieldToJSON(field)
		}
		out[i] = obj
	}
	return json.Marshal(out)
}

func fieldToJSON(f types.Field) any {
	switch v := f.(type) {
	case *types.IntField:
		return v.Value
	case *types.FloatField:
		return v.Value
	case *types.StringField:
		return v.Value
	case *types.BoolField:
		return v.Value
	case *types.BytesField:
		return v.Value
	default:
		return nil
	}
}
