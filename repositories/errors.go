package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a scoped lookup matches no row. Ownership
// mismatches surface as ErrNotFound too, so callers cannot distinguish
// "absent" from "owned by someone else".
var ErrNotFound = errors.New("record not found")

// translate maps gorm's not-found error to the repository sentinel
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
