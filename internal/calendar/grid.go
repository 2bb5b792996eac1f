package calendar

import (
	"fmt"
	"time"

	"github.com/Dmast1/bookingart-api/internal/domain/availability"
)

// DayStatus is one sparse calendar entry as served by the availability
// endpoint: a YYYY-MM-DD date and its status.
type DayStatus struct {
	Date   string              `json:"date"`
	Status availability.Status `json:"status"`
}

// Day is one rendered cell. Status is empty when nothing is known about the
// day. Bookable days carry the navigation target; non-bookable days carry
// none, so clicking them is a no-op by construction.
type Day struct {
	Day      int                 `json:"day"`
	Date     string              `json:"date"`
	Status   availability.Status `json:"status,omitempty"`
	Bookable bool                `json:"bookable"`
	URL      string              `json:"url,omitempty"`
}

// MonthGrid renders Monday-first: Leading is the number of blank cells
// before day 1.
type MonthGrid struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Leading int   `json:"leading"`
	Days    []Day `json:"days"`
}

// mondayIndexed converts Go's Sunday-based weekday to a Monday-first offset.
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// BuildPublicGrids buckets sparse (date, status) entries into month grids
// from the month of the earliest entry through the month of the latest,
// inclusive. Unparseable entries are ignored when computing bounds; days
// without an entry render with no status and are not bookable. bookingURL
// receives each bookable day's date.
func BuildPublicGrids(entries []DayStatus, bookingURL func(date string) string) []MonthGrid {
	statuses := make(map[string]availability.Status, len(entries))

	var min, max time.Time
	for _, e := range entries {
		d, ok := availability.ParseDay(e.Date)
		if !ok {
			continue
		}
		statuses[e.Date] = e.Status
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}

	if min.IsZero() {
		return nil
	}

	first := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(max.Year(), max.Month(), 1, 0, 0, 0, 0, time.UTC)

	var grids []MonthGrid
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		grids = append(grids, buildMonth(m, func(date string) (availability.Status, bool, string) {
			status, ok := statuses[date]
			if !ok || !availability.CanTarget(status) {
				return status, false, ""
			}
			return status, true, bookingURL(date)
		}))
	}

	return grids
}

// ProviderWindow is the half-open [from, to) day range covering exactly the
// two months BuildProviderGrids renders, so the rule query and the grid stay
// in lockstep. to is the first day of the month after next, which keeps the
// last day of the next month inside the window.
func ProviderWindow(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 2, 0)
}

// BuildProviderGrids renders exactly the current and next month for the
// provider's own editing calendar. A day without a rule defaults to free
// (no rule means available, by convention) and every day navigates to its
// per-day editing route.
func BuildProviderGrids(now time.Time, entries []DayStatus, editURL func(date string) string) []MonthGrid {
	statuses := make(map[string]availability.Status, len(entries))
	for _, e := range entries {
		if _, ok := availability.ParseDay(e.Date); ok {
			statuses[e.Date] = e.Status
		}
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	grids := make([]MonthGrid, 0, 2)
	for _, m := range []time.Time{current, current.AddDate(0, 1, 0)} {
		grids = append(grids, buildMonth(m, func(date string) (availability.Status, bool, string) {
			status, ok := statuses[date]
			if !ok {
				status = availability.StatusFree
			}
			return status, true, editURL(date)
		}))
	}

	return grids
}

func buildMonth(month time.Time, resolve func(date string) (availability.Status, bool, string)) MonthGrid {
	daysInMonth := month.AddDate(0, 1, -1).Day()

	grid := MonthGrid{
		Year:    month.Year(),
		Month:   int(month.Month()),
		Leading: mondayIndexed(month.Weekday()),
		Days:    make([]Day, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", month.Year(), int(month.Month()), d)
		status, bookable, url := resolve(date)

		grid.Days = append(grid.Days, Day{
			Day:      d,
			Date:     date,
			Status:   status,
			Bookable: bookable,
			URL:      url,
		})
	}

	return grid
}
