package ticketing

// CanSell reports whether qty more tickets fit in an event. Capacity zero
// means the organizer did not cap attendance; otherwise sold plus the new
// quantity may not exceed it.
func CanSell(capacity, sold, qty int) bool {
	if qty < 1 {
		return false
	}
	if capacity <= 0 {
		return true
	}
	return sold+qty <= capacity
}
