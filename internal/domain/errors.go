package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrOfferUnavailable = errors.New("match offer unavailable")
	ErrInvalidSchedule  = errors.New("invalid bonus schedule")
	ErrFeedUnreachable  = errors.New("odds feed unreachable")
)
