package ticketing

import "testing"

func TestCanSell(t *testing.T) {
	cases := []struct {
		name                string
		capacity, sold, qty int
		want                bool
	}{
		{"fits", 100, 40, 10, true},
		{"exact fill", 100, 90, 10, true},
		{"one over", 100, 91, 10, false},
		{"already full", 100, 100, 1, false},
		{"uncapped", 0, 100000, 50, true},
		{"negative capacity treated as uncapped", -1, 10, 5, true},
		{"zero quantity", 100, 0, 0, false},
		{"negative quantity", 100, 0, -3, false},
	}

	for _, c := range cases {
		if got := CanSell(c.capacity, c.sold, c.qty); got != c.want {
			t.Fatalf("%s: CanSell(%d, %d, %d) = %v, want %v",
				c.name, c.capacity, c.sold, c.qty, got, c.want)
		}
	}
}
