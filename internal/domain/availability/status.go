package availability

// Status is a provider day's booking state.
type Status string

const (
	StatusFree    Status = "free"
	StatusPartial Status = "partial"
	StatusBusy    Status = "busy"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusFree, StatusPartial, StatusBusy:
		return Status(s), true
	}
	return "", false
}

// CanTarget reports whether a public visitor may open a booking intent on a
// day with this status. Busy days and days without a rule are not bookable.
func CanTarget(s Status) bool {
	return s == StatusFree || s == StatusPartial
}
