package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicate reports a unique-constraint violation. Not-found is not an
// error at this layer: lookups return (nil, nil) and services decide what a
// missing row means for them.
var ErrDuplicate = errors.New("duplicate record")

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
