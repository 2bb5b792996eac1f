package booking

import (
	"time"

	"github.com/Dmast1/bookingart-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Accept(br *models.BookingRequest, now time.Time) error {
	if err := CanAnswer(Status(br.Status)); err != nil {
		return err
	}

	br.Status = string(StatusAccepted)
	br.AcceptedAt = &now
	return nil
}

func Decline(br *models.BookingRequest, now time.Time) error {
	if err := CanAnswer(Status(br.Status)); err != nil {
		return err
	}

	br.Status = string(StatusDeclined)
	br.DeclinedAt = &now
	return nil
}

func Cancel(br *models.BookingRequest, now time.Time) error {
	if err := CanCancel(Status(br.Status)); err != nil {
		return err
	}

	br.Status = string(StatusCancelled)
	br.CancelledAt = &now
	return nil
}
