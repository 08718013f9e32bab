package uuid

import (
	google_uuid "github.com/google/uuid"
)

// MustUUID generates a random UUID string for use as a todo id
func MustUUID() string {
	return google_uuid.New().String()
}
