package payments

import "testing"

func TestMapPaymentStatus(t *testing.T) {
	cases := map[string]string{
		"approved":     OrderPaid,
		"rejected":     OrderCancelled,
		"cancelled":    OrderCancelled,
		"refunded":     OrderCancelled,
		"charged_back": OrderCancelled,
		"in_process":   OrderPending,
		"pending":      OrderPending,
		"":             OrderPending,
	}

	for in, want := range cases {
		if got := MapPaymentStatus(in); got != want {
			t.Fatalf("MapPaymentStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
