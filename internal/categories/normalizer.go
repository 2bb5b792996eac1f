package categories

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackKey is returned only when the normalized input is empty.
const FallbackKey = "other"

// labelTable maps human/localized labels to canonical category keys.
// Entries are written diacritic-free and lowercase; Normalize strips
// diacritics before the lookup, so "Sală" hits the "sala" entry.
var labelTable = map[string]string{
	"foto":       "foto",
	"fotograf":   "foto",
	"fotografie": "foto",
	"photo":      "foto",

	"video":       "video",
	"videograf":   "video",
	"filmare":     "video",
	"cameraman":   "video",
	"videografie": "video",

	"dj": "dj",

	"formatie": "formatie",
	"trupa":    "formatie",
	"band":     "formatie",

	"solist":  "solist",
	"solista": "solist",

	"mc":          "mc",
	"prezentator": "mc",
	"moderator":   "mc",

	"sala":       "sali",
	"sali":       "sali",
	"salon":      "sali",
	"local":      "sali",
	"restaurant": "sali",

	"catering": "catering",

	"decor":       "decor",
	"decorator":   "decor",
	"decoratiuni": "decor",
	"aranjamente": "decor",

	"flori":    "flori",
	"florarie": "flori",
	"florist":  "flori",

	"invitatii": "invitatii",
	"papetarie": "invitatii",

	"tort":      "tort",
	"cofetarie": "tort",
	"candy bar": "tort",

	"lumini":          "lumini_sunet",
	"sunet":           "lumini_sunet",
	"sonorizare":      "lumini_sunet",
	"lumini si sunet": "lumini_sunet",

	"cabina foto": "foto_booth",
	"foto booth":  "foto_booth",
	"photo booth": "foto_booth",

	"organizare":      "organizare",
	"organizator":     "organizare",
	"planner":         "organizare",
	"wedding planner": "organizare",

	"transport": "transport",
	"limuzina":  "transport",

	"artificii": "artificii",
	"ursitoare": "ursitoare",
}

// collapsedTable indexes the same entries by their collapsed form, so the
// second-chance lookup ("photo booth" submitted as "photo/booth") still hits.
var collapsedTable = func() map[string]string {
	m := make(map[string]string, len(labelTable))
	for label, key := range labelTable {
		m[collapse(label)] = key
	}
	return m
}()

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// delimiters collapsed away by the second-chance lookup.
var delimiterReplacer = strings.NewReplacer("/", " ", "\\", " ", ".", " ")

func collapse(s string) string {
	s = delimiterReplacer.Replace(s)
	return strings.Join(strings.Fields(s), "_")
}

// Normalize converts a human-entered or localized category label into a
// stable machine key. Total: unknown labels pass through as their own
// collapsed key, and only an empty input yields FallbackKey.
func Normalize(label string) string {
	t := stripDiacritics(strings.ToLower(strings.TrimSpace(label)))

	if key, ok := labelTable[t]; ok {
		return key
	}

	collapsed := collapse(t)
	if key, ok := collapsedTable[collapsed]; ok {
		return key
	}

	if collapsed == "" {
		return FallbackKey
	}
	return collapsed
}

// CollectKeys normalizes a submitted category list into the canonical,
// deduplicated, lexicographically sorted form persisted on the provider.
// The same conceptual set always serializes identically regardless of
// submission order.
func CollectKeys(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	keys := make([]string, 0, len(labels))

	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			continue
		}
		key := Normalize(label)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}
