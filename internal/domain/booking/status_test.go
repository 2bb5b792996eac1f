package booking

import (
	"testing"
	"time"

	"github.com/Dmast1/bookingart-api/internal/models"
)

func TestAccept_OnlyFromPending(t *testing.T) {
	now := time.Now()

	br := &models.BookingRequest{Status: string(StatusPending)}
	if err := Accept(br, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.Status != string(StatusAccepted) || br.AcceptedAt == nil {
		t.Fatalf("expected accepted with timestamp, got %+v", br)
	}

	if err := Accept(br, now); err == nil {
		t.Fatalf("expected second accept to fail")
	}
}

func TestDecline_OnlyFromPending(t *testing.T) {
	br := &models.BookingRequest{Status: string(StatusCancelled)}
	if err := Decline(br, time.Now()); err == nil {
		t.Fatalf("expected decline of cancelled request to fail")
	}
}

func TestCancel_FromPendingOrAccepted(t *testing.T) {
	now := time.Now()

	for _, from := range []Status{StatusPending, StatusAccepted} {
		br := &models.BookingRequest{Status: string(from)}
		if err := Cancel(br, now); err != nil {
			t.Fatalf("cancel from %s: unexpected error %v", from, err)
		}
		if br.Status != string(StatusCancelled) || br.CancelledAt == nil {
			t.Fatalf("expected cancelled with timestamp, got %+v", br)
		}
	}

	br := &models.BookingRequest{Status: string(StatusDeclined)}
	if err := Cancel(br, now); err == nil {
		t.Fatalf("expected cancel of declined request to fail")
	}
}
