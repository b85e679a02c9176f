package service

import "errors"

var (
	ErrNothingToInsert = errors.New("no persistable fields remain after mapping")

	ErrUnknownCategory = errors.New("unknown file category")
	ErrInvalidFileName = errors.New("invalid file name")
)
