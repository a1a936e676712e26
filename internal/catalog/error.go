package catalog

import "errors"

var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrBrandExists      = errors.New("brand with this name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrParentNotFound   = errors.New("parent category not found")
	ErrOfferNotFound    = errors.New("offer not found")
)
