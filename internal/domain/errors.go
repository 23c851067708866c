package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repositories and services. Controllers map
// these to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrTokenExpired = errors.New("invite token has expired")
	ErrMeetupEnded  = errors.New("meetup has already ended")
	ErrNotAMember   = errors.New("not a member of this meetup")
	ErrInvalidInput = errors.New("invalid input")
)

// StoreError reports a failed call against the backing data store. In remote
// mode it carries the upstream HTTP status and response body; transport
// failures leave Status zero.
type StoreError struct {
	Op     string
	Status int
	Body   string
}

func (e *StoreError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("store: %s: status %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("store: %s: %s", e.Op, e.Body)
}
