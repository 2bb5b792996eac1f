package payments

// Order statuses stored on TicketOrder.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderCancelled = "cancelled"
)

// MapPaymentStatus folds Mercado Pago payment states onto order statuses.
// States that do not settle the order ("in_process", "pending" …) keep it
// pending.
func MapPaymentStatus(mpStatus string) string {
	switch mpStatus {
	case "approved":
		return OrderPaid
	case "rejected", "cancelled", "refunded", "charged_back":
		return OrderCancelled
	default:
		return OrderPending
	}
}
