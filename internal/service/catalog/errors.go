package catalog

import "errors"

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrProductNotFound = errors.New("product not found")
)
