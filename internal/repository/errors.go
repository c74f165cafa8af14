package repository

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrCourseNotBookable = errors.New("course is not bookable")
	ErrNoCapacity        = errors.New("not enough available spots")
)
