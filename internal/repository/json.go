package repository

import "encoding/json"

// jsonbValue marshals v for a jsonb column. Nil slices become empty JSON
// arrays so NOT NULL jsonb columns always hold a well-formed document.
func jsonbValue(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

// jsonbScan unmarshals a jsonb column into dest. A NULL column (nil bytes)
// leaves dest at its zero value.
func jsonbScan(b []byte, dest any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dest)
}
