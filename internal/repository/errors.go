package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the
// database. Get-by-key service operations translate it to a nil result;
// update/delete-by-id paths that target a specific record surface it.
var ErrNotFound = errors.New("not found")

// ErrInvalidCursor is returned when a pagination cursor cannot be decoded
// or does not match the sort of the query it was passed to.
var ErrInvalidCursor = errors.New("invalid cursor")

// ErrInvalidSortField is returned when a caller asks to sort a listing by a
// field outside the collection's whitelist.
var ErrInvalidSortField = errors.New("invalid sort field")
