package categories

import (
	"reflect"
	"testing"
)

func TestNormalize_KnownLabels(t *testing.T) {
	cases := map[string]string{
		"Foto":            "foto",
		"fotograf":        "foto",
		"Fotografie":      "foto",
		"DJ":              "dj",
		"Sală":            "sali",
		"sala":            "sali",
		"Formație":        "formatie",
		"Decorațiuni":     "decor",
		"  catering  ":    "catering",
		"Lumini și sunet": "lumini_sunet",
	}

	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_DiacriticInvariance(t *testing.T) {
	pairs := [][2]string{
		{"Sală", "Sala"},
		{"Formație", "Formatie"},
		{"Invitații", "Invitatii"},
		{"Cofetărie", "Cofetarie"},
	}

	for _, p := range pairs {
		if Normalize(p[0]) != Normalize(p[1]) {
			t.Fatalf("Normalize(%q)=%q differs from Normalize(%q)=%q",
				p[0], Normalize(p[0]), p[1], Normalize(p[1]))
		}
	}
}

func TestNormalize_CollapsedRetry(t *testing.T) {
	if got := Normalize("photo/booth"); got != "foto_booth" {
		t.Fatalf("expected collapsed retry to hit the table, got %q", got)
	}
	if got := Normalize("lumini  si   sunet"); got != "lumini_sunet" {
		t.Fatalf("expected whitespace collapse to hit the table, got %q", got)
	}
}

func TestNormalize_UnknownPassthrough(t *testing.T) {
	if got := Normalize("Jonglerie cu foc"); got != "jonglerie_cu_foc" {
		t.Fatalf("expected passthrough key, got %q", got)
	}
}

func TestNormalize_EmptyFallsBack(t *testing.T) {
	if got := Normalize(""); got != FallbackKey {
		t.Fatalf("Normalize(\"\") = %q, want %q", got, FallbackKey)
	}
	if got := Normalize("  /. "); got != FallbackKey {
		t.Fatalf("Normalize(delimiters only) = %q, want %q", got, FallbackKey)
	}
}

func TestCollectKeys_OrderIndependent(t *testing.T) {
	a := CollectKeys([]string{"Foto", "DJ"})
	b := CollectKeys([]string{"DJ", "Foto"})

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical key sets, got %v and %v", a, b)
	}
	if !reflect.DeepEqual(a, []string{"dj", "foto"}) {
		t.Fatalf("expected sorted [dj foto], got %v", a)
	}
}

func TestCollectKeys_DedupesAliases(t *testing.T) {
	got := CollectKeys([]string{"Foto", "Fotograf", "fotografie"})
	if !reflect.DeepEqual(got, []string{"foto"}) {
		t.Fatalf("expected aliases to collapse to [foto], got %v", got)
	}
}
