package core

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation error")
	ErrSingletonExists      = errors.New("only one instance may exist")
	ErrSingletonUndeletable = errors.New("instance cannot be deleted")
	ErrCategoryType         = errors.New("category type does not match content")
)
