package property

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotOwner         = errors.New("only the owner can modify this property")

	ErrPropertyTypeNotFound = errors.New("property type not found")
	ErrPropertyTypeInUse    = errors.New("property type is still referenced")
	ErrTagNotFound          = errors.New("tag not found")
)
