package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Entity ids are 11-character nanoid tokens, generated at the storage
// boundary when the caller does not supply one.
const idLength = 11

func newID() (string, error) {
	return gonanoid.New(idLength)
}
