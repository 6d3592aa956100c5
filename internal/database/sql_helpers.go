package database

import (
	"bytes"
	"database/sql"
	"encoding/json"
)

// nullableString converts a string to sql.NullString for optional fields.
// Empty strings are treated as NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// nullableJSON stores raw JSON as TEXT. Empty input and a JSON null are both
// stored as NULL.
func nullableJSON(raw json.RawMessage) sql.NullString {
	if isJSONNull(raw) {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

// rawJSON converts a scanned TEXT column back to raw JSON.
func rawJSON(v sql.NullString) json.RawMessage {
	if !v.Valid || isJSONNull(json.RawMessage(v.String)) {
		return nil
	}
	return json.RawMessage(v.String)
}

// isJSONNull reports whether raw carries no value.
func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}
