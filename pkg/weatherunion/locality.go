package weatherunion

import (
	"fmt"
	"sort"
)

// Locality identifies a geographic unit recognized by Weather Union. Known ids
// are exported as constants in localities.go; any provider-issued id string still
// works with Client.LocalityID even when it is absent from the bundled table.
type Locality string

// ID returns the provider-defined id string.
func (l Locality) ID() string { return string(l) }

// Name returns the display name from the bundled table, or "" for unknown ids.
func (l Locality) Name() string { return localityTable[l].name }

// LatLong returns the bundled coordinates for the locality. ok is false when the
// id is not part of the table.
func (l Locality) LatLong() (lat, long float64, ok bool) {
	info, ok := localityTable[l]
	return info.lat, info.long, ok
}

func (l Locality) String() string {
	name := l.Name()
	if name == "" {
		name = "<unknown locality>"
	}
	return string(l) + " " + name
}

// LocalityFromID validates id against the bundled table.
func LocalityFromID(id string) (Locality, error) {
	if id == "" {
		return "", ErrEmptyLocalityID
	}
	l := Locality(id)
	if _, ok := localityTable[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocality, id)
	}
	return l, nil
}

// Localities returns every locality from the bundled table, sorted by id.
func Localities() []Locality {
	out := make([]Locality, 0, len(localityTable))
	for l := range localityTable {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
