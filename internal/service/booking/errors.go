package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrCourseNotBookable = errors.New("course is not open for booking")
)

type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry in %s", e.RetryAfter)
}
