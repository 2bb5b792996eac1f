package booking

import "github.com/Dmast1/bookingart-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// Only pending requests can be answered by the provider.
func CanAnswer(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Clients may withdraw a request while it is pending or already accepted.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusAccepted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
