package calendar

import (
	"testing"
	"time"

	"github.com/Dmast1/bookingart-api/internal/domain/availability"
)

func bookingURL(date string) string {
	return "/rezerva?date=" + date
}

func editURL(date string) string {
	return "/calendar/edit?date=" + date
}

func findDay(t *testing.T, g MonthGrid, day int) Day {
	t.Helper()
	for _, d := range g.Days {
		if d.Day == day {
			return d
		}
	}
	t.Fatalf("day %d not in grid %d-%02d", day, g.Year, g.Month)
	return Day{}
}

func TestBuildPublicGrids_MonthSpan(t *testing.T) {
	entries := []DayStatus{
		{Date: "2025-03-10", Status: availability.StatusBusy},
		{Date: "2025-05-02", Status: availability.StatusFree},
	}

	grids := BuildPublicGrids(entries, bookingURL)
	if len(grids) != 3 {
		t.Fatalf("expected grids for Mar, Apr, May, got %d", len(grids))
	}
	if grids[0].Month != 3 || grids[1].Month != 4 || grids[2].Month != 5 {
		t.Fatalf("unexpected month sequence: %+v", grids)
	}
}

func TestBuildPublicGrids_LeadingMondayIndexed(t *testing.T) {
	// 2025-03-01 is a Saturday: Monday-first leading must be 5.
	grids := BuildPublicGrids([]DayStatus{
		{Date: "2025-03-10", Status: availability.StatusBusy},
	}, bookingURL)

	if len(grids) != 1 {
		t.Fatalf("expected a single grid, got %d", len(grids))
	}
	if grids[0].Leading != 5 {
		t.Fatalf("expected leading 5, got %d", grids[0].Leading)
	}
	if len(grids[0].Days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(grids[0].Days))
	}
}

func TestBuildPublicGrids_ClickGating(t *testing.T) {
	grids := BuildPublicGrids([]DayStatus{
		{Date: "2025-03-10", Status: availability.StatusBusy},
		{Date: "2025-03-12", Status: availability.StatusFree},
		{Date: "2025-03-13", Status: availability.StatusPartial},
	}, bookingURL)

	g := grids[0]

	busy := findDay(t, g, 10)
	if busy.Bookable || busy.URL != "" {
		t.Fatalf("busy day must not navigate: %+v", busy)
	}

	unknown := findDay(t, g, 11)
	if unknown.Bookable || unknown.URL != "" || unknown.Status != "" {
		t.Fatalf("unknown day must not navigate: %+v", unknown)
	}

	free := findDay(t, g, 12)
	if !free.Bookable || free.URL != "/rezerva?date=2025-03-12" {
		t.Fatalf("free day must navigate to intent URL: %+v", free)
	}

	partial := findDay(t, g, 13)
	if !partial.Bookable || partial.URL == "" {
		t.Fatalf("partial day must navigate: %+v", partial)
	}
}

func TestBuildPublicGrids_IgnoresUnparseable(t *testing.T) {
	grids := BuildPublicGrids([]DayStatus{
		{Date: "mâine", Status: availability.StatusFree},
		{Date: "2025-03-10", Status: availability.StatusFree},
	}, bookingURL)

	if len(grids) != 1 || grids[0].Month != 3 {
		t.Fatalf("bounds must skip unparseable entries, got %+v", grids)
	}
}

func TestBuildPublicGrids_Empty(t *testing.T) {
	if grids := BuildPublicGrids(nil, bookingURL); grids != nil {
		t.Fatalf("expected nil grids, got %+v", grids)
	}
}

func TestBuildProviderGrids_TwoMonths(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	grids := BuildProviderGrids(now, nil, editURL)
	if len(grids) != 2 {
		t.Fatalf("expected exactly two grids, got %d", len(grids))
	}
	if grids[0].Month != 3 || grids[1].Month != 4 {
		t.Fatalf("expected Mar+Apr, got %d and %d", grids[0].Month, grids[1].Month)
	}
}

func TestBuildProviderGrids_DefaultsFreeAndAlwaysNavigates(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	grids := BuildProviderGrids(now, []DayStatus{
		{Date: "2025-03-10", Status: availability.StatusBusy},
	}, editURL)

	g := grids[0]

	busy := findDay(t, g, 10)
	if busy.Status != availability.StatusBusy {
		t.Fatalf("expected explicit rule to win, got %+v", busy)
	}
	if !busy.Bookable || busy.URL != "/calendar/edit?date=2025-03-10" {
		t.Fatalf("provider variant must navigate on every day: %+v", busy)
	}

	unset := findDay(t, g, 11)
	if unset.Status != availability.StatusFree {
		t.Fatalf("day without a rule must default to free, got %+v", unset)
	}
	if !unset.Bookable || unset.URL == "" {
		t.Fatalf("provider variant must navigate on unset days: %+v", unset)
	}
}

func TestBuildProviderGrids_YearRollover(t *testing.T) {
	now := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)

	grids := BuildProviderGrids(now, nil, editURL)
	if grids[0].Year != 2025 || grids[0].Month != 12 {
		t.Fatalf("expected Dec 2025 first, got %+v", grids[0])
	}
	if grids[1].Year != 2026 || grids[1].Month != 1 {
		t.Fatalf("expected Jan 2026 second, got %+v", grids[1])
	}
}

func TestProviderWindow_CoversLastDayOfNextMonth(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	from, to := ProviderWindow(now)
	if !from.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v, want Mar 1", from)
	}
	if !to.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("to = %v, want May 1 (half-open)", to)
	}

	// A rule on the last rendered day must fall inside [from, to).
	lastDay := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	if lastDay.Before(from) || !lastDay.Before(to) {
		t.Fatalf("Apr 30 not inside the query window [%v, %v)", from, to)
	}

	// The window covers exactly the two rendered months, nothing more.
	grids := BuildProviderGrids(now, nil, editURL)
	first := grids[0]
	last := grids[1]
	if first.Year != from.Year() || first.Month != int(from.Month()) {
		t.Fatalf("first grid %d-%02d does not start the window %v", first.Year, first.Month, from)
	}
	afterLast := time.Date(last.Year, time.Month(last.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	if !afterLast.Equal(to) {
		t.Fatalf("window end %v does not close the last grid %d-%02d", to, last.Year, last.Month)
	}
}

func TestProviderWindow_YearRollover(t *testing.T) {
	from, to := ProviderWindow(time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC))
	if !from.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v, want Dec 1 2026", from)
	}
	if !to.Equal(time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("to = %v, want Feb 1 2027", to)
	}
}
