package service

import "errors"

var (
	ErrTextRequired      = errors.New("text is required")
	ErrCategoryRequired  = errors.New("category is required")
	ErrMessageNotFound   = errors.New("message not found")
	ErrParentNotFound    = errors.New("parent comment not found")
	ErrParentMismatch    = errors.New("parent comment belongs to a different message")
	ErrParentNotTopLevel = errors.New("replies to replies are not allowed")
)
