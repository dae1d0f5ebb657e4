package service

import (
	"errors"

	"gorm.io/gorm"
)

var errPresent = errors.New("record present")

// ensureAbsent turns a lookup result into nil when nothing was found,
// errPresent when a record exists, or the lookup error otherwise.
func ensureAbsent(_ any, err error) error {
	if err == nil {
		return errPresent
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// notFoundAs replaces gorm.ErrRecordNotFound with the given domain error.
func notFoundAs(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
