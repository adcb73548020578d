package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Cereal identifies a good from the closed catalog. The value is the
// catalog key; Local returns the display name.
type Cereal string

// Catalog entries, in declaration order.
const (
	Buckwheat Cereal = "BUCKWHEAT"
	Rice      Cereal = "RICE"
	Millet    Cereal = "MILLET"
	Peas      Cereal = "PEAS"
	Bulgur    Cereal = "BULGUR"
)

// catalog holds the display name of every known cereal.
var catalog = map[Cereal]string{
	Buckwheat: "Гречка",
	Rice:      "Рис",
	Millet:    "Пшено",
	Peas:      "Горох",
	Bulgur:    "Булгур",
}

// catalogOrder fixes the iteration order of Cereals.
var catalogOrder = []Cereal{Buckwheat, Rice, Millet, Peas, Bulgur}

// lookup maps case-folded keys and display names to catalog entries.
var lookup = buildLookup()

func buildLookup() map[string]Cereal {
	fold := cases.Fold()
	m := make(map[string]Cereal, 2*len(catalogOrder))
	for _, c := range catalogOrder {
		m[fold.String(string(c))] = c
		m[fold.String(catalog[c])] = c
	}
	return m
}

// Cereals returns the catalog in declaration order.
// The returned slice is a copy; callers may modify it.
func Cereals() []Cereal {
	out := make([]Cereal, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// ParseCereal resolves a catalog key ("buckwheat") or display name
// ("Гречка") to a Cereal. Matching ignores case and surrounding spaces.
// Returns ErrUnknownCereal if nothing matches.
func ParseCereal(s string) (Cereal, error) {
	key := cases.Fold().String(strings.TrimSpace(s))
	if c, ok := lookup[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCereal, s)
}

// Valid reports whether c belongs to the catalog.
func (c Cereal) Valid() bool {
	_, ok := catalog[c]
	return ok
}

// Local returns the display name used when rendering a storage listing.
// Unknown cereals render as their raw key.
func (c Cereal) Local() string {
	if name, ok := catalog[c]; ok {
		return name
	}
	return string(c)
}

func (c Cereal) String() string {
	return string(c)
}
