package tile

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/matzehuels/gridpark/pkg/errors"
)

// Kind identifies the type of a grid cell.
type Kind uint8

const (
	Grass Kind = iota
	Tree
	Path
	Bench

	numKinds
)

// Attributes holds the static per-unit values of a tile kind.
type Attributes struct {
	Name          string
	CostUpfront   int
	CostYearly    int
	CO2Upfront    int
	CO2Yearly     int
	CO2Absorption int // yearly; negative is net sequestration
	Glyph         string
	Code          rune
}

var catalog = [numKinds]Attributes{
	Grass: {Name: "grass", CostUpfront: 0, CostYearly: 100, CO2Upfront: 0, CO2Yearly: 10, CO2Absorption: -8, Glyph: "🌱", Code: 'G'},
	Tree:  {Name: "tree", CostUpfront: 1000, CostYearly: 400, CO2Upfront: 150, CO2Yearly: 25, CO2Absorption: -30, Glyph: "🌲", Code: 'T'},
	Path:  {Name: "path", CostUpfront: 400, CostYearly: 50, CO2Upfront: 110, CO2Yearly: 10, CO2Absorption: 0, Glyph: "⬜", Code: 'P'},
	Bench: {Name: "bench", CostUpfront: 2000, CostYearly: 100, CO2Upfront: 140, CO2Yearly: 20, CO2Absorption: 0, Glyph: "🪑", Code: 'B'},
}

var (
	byCode = make(map[rune]Kind, numKinds)
	byName = make(map[string]Kind, numKinds)
)

func init() {
	for k := Kind(0); k < numKinds; k++ {
		a := catalog[k]
		byCode[a.Code] = k
		byName[a.Name] = k
	}
}

// All returns every catalog kind in declaration order.
// The returned slice is a fresh copy.
func All() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k belongs to the catalog.
func (k Kind) Valid() bool {
	return k < numKinds
}

// Lookup returns the attribute record for k.
func Lookup(k Kind) (Attributes, error) {
	if !k.Valid() {
		return Attributes{}, errors.New(errors.ErrCodeUnknownTileKind, "unknown tile kind %d", uint8(k))
	}
	return catalog[k], nil
}

// MustLookup is like Lookup but panics on an unknown kind.
func MustLookup(k Kind) Attributes {
	a, err := Lookup(k)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the lower-case kind name, or "Kind(n)" for values outside
// the catalog so that formatting an invalid kind never panics.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].Name
}

// Glyph returns the display symbol of k.
func (k Kind) Glyph() string { return MustLookup(k).Glyph }

// Code returns the single-letter code of k.
func (k Kind) Code() rune { return MustLookup(k).Code }

// ParseCode maps a letter code (case-insensitive) to its kind.
func ParseCode(r rune) (Kind, error) {
	if k, ok := byCode[unicode.ToUpper(r)]; ok {
		return k, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownTileKind, "unknown tile code %q", r)
}

// ParseName maps a kind name (case-insensitive) to its kind.
func ParseName(s string) (Kind, error) {
	if k, ok := byName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownTileKind, "unknown tile kind %q", s)
}

// Parse accepts either a letter code or a kind name.
func Parse(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) == 1 {
		return ParseCode(r[0])
	}
	return ParseName(s)
}

// ParseKinds parses a comma-separated list of codes or names, e.g. "G,T,path".
// Order is preserved; it defines the enumeration alphabet.
// An empty string yields the whole catalog.
func ParseKinds(s string) ([]Kind, error) {
	if strings.TrimSpace(s) == "" {
		return All(), nil
	}
	parts := strings.Split(s, ",")
	kinds := make([]Kind, 0, len(parts))
	for _, p := range parts {
		k, err := Parse(p)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Codes renders kinds as their comma-separated letter codes.
func Codes(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k.Code())
	}
	return strings.Join(parts, ",")
}
