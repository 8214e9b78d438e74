package models

import "errors"

// ErrNotFound is returned by store update callbacks when the addressed
// record does not exist; the HTTP layer maps it to a 404.
var ErrNotFound = errors.New("record not found")
