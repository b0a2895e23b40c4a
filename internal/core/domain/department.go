package domain

import "errors"

// ErrNotSupported is returned by department mutations: the source system
// ships them as placeholders only, and that is reproduced rather than guessed
// at.
var ErrNotSupported = errors.New("operation not supported")

// Department is a seeded organizational unit. IDs are integers and expected
// to be unique, but nothing enforces it.
type Department struct {
	ID          int    `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}
