package document

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrInvalidCategory = errors.New("unknown document category")
)
