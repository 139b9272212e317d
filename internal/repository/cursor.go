package repository

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Sort specifies a listing order. Field names are the API-level names
// (e.g. "display_order", "created_at"); each repository maps them onto
// columns through its own whitelist.
type Sort struct {
	Field string
	Desc  bool
}

// cursorToken is the decoded form of an opaque pagination cursor: the sort
// key and id of the last row of the previous page. Binding the sort into
// the token lets a repository reject cursors replayed against a different
// ordering instead of silently returning wrong pages.
type cursorToken struct {
	Field string `json:"f"`
	Desc  bool   `json:"d"`
	Value string `json:"v"`
	ID    string `json:"id"`
}

// encodeCursor serializes the resume point after the row with the given
// sort-key value and id.
func encodeCursor(sort Sort, value, id string) string {
	b, _ := json.Marshal(cursorToken{Field: sort.Field, Desc: sort.Desc, Value: value, ID: id})
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeCursor parses an opaque cursor and checks it against the sort of
// the current query. Returns ErrInvalidCursor for anything malformed.
func decodeCursor(s string, sort Sort) (cursorToken, error) {
	var tok cursorToken
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return tok, ErrInvalidCursor
	}
	if err := json.Unmarshal(raw, &tok); err != nil {
		return tok, ErrInvalidCursor
	}
	if tok.ID == "" || tok.Field != sort.Field || tok.Desc != sort.Desc {
		return tok, ErrInvalidCursor
	}
	return tok, nil
}

// keysetCondition renders the row-value comparison that resumes a keyset
// page after (sort value, id), using placeholders $argPos and $argPos+1.
func keysetCondition(column string, desc bool, argPos int) string {
	op := ">"
	if desc {
		op = "<"
	}
	return fmt.Sprintf("(%s, id) %s ($%d, $%d)", column, op, argPos, argPos+1)
}

// orderBy renders the ORDER BY expression for a keyset listing. The id
// tiebreaker keeps the ordering total so pages never skip or repeat rows.
func orderBy(column string, desc bool) string {
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, id %s", column, dir, dir)
}

// Cursor value serialization helpers. Values travel inside the token as
// strings regardless of the column type.

func cursorInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ErrInvalidCursor
	}
	return n, nil
}

func cursorTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, ErrInvalidCursor
	}
	return t, nil
}

func formatCursorTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
