package domain

import "errors"

var (
	ErrDishNotFound   = errors.New("no matching dish found")
	ErrMethodNotFound = errors.New("item not found")
	ErrItemNotFound   = errors.New("inventory item not found")
)
