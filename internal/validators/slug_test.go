package validators

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Formația Crăiasa":    "formatia-craiasa",
		"DJ  Andrei / Cluj":   "dj-andrei-cluj",
		"  Tort & Candy Bar ": "tort-candy-bar",
	}

	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsSlugValid(t *testing.T) {
	for _, good := range []string{"dj-andrei", "sala-panoramic-10"} {
		if !IsSlugValid(good) {
			t.Fatalf("expected %q to be valid", good)
		}
	}
	for _, bad := range []string{"", "ab", "-dj", "dj-", "DJ", "dj--andrei", "sală"} {
		if IsSlugValid(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}
