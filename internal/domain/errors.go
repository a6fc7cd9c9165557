package domain

import "errors"

// ErrQuizNotFound indicates the referenced quiz does not exist.
var ErrQuizNotFound = errors.New("quiz not found")
