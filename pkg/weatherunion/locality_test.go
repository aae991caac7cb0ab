//go:build unit

package weatherunion_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

func TestLocalities_EveryEntryHasNameAndCoordinates(t *testing.T) {
	all := weatherunion.Localities()
	require.NotEmpty(t, all)

	for _, l := range all {
		assert.NotEmpty(t, l.ID(), "locality id must be non-empty")
		assert.NotEmpty(t, l.Name(), "locality %s must have a display name", l.ID())

		lat, long, ok := l.LatLong()
		assert.True(t, ok, "locality %s must have coordinates", l.ID())
		assert.NotZero(t, lat)
		assert.NotZero(t, long)
	}
}

func TestLocalities_SortedByID(t *testing.T) {
	all := weatherunion.Localities()
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i] < all[j]
	}))
}

func TestLocality_Name(t *testing.T) {
	assert.Equal(t, "Bengaluru Banashankari", weatherunion.ZWL003467.Name())
	assert.Equal(t, "Mumbai Colaba", weatherunion.ZWL005320.Name())
	assert.Empty(t, weatherunion.Locality("ZWL000000").Name())
}

func TestLocality_LatLong(t *testing.T) {
	lat, long, ok := weatherunion.ZWL003467.LatLong()
	require.True(t, ok)
	assert.Equal(t, 12.936787, lat)
	assert.Equal(t, 77.556079, long)

	_, _, ok = weatherunion.Locality("ZWL000000").LatLong()
	assert.False(t, ok)
}

func TestLocality_String(t *testing.T) {
	assert.Equal(t, "ZWL003467 Bengaluru Banashankari", weatherunion.ZWL003467.String())
	assert.Equal(t, "ZWL000000 <unknown locality>", weatherunion.Locality("ZWL000000").String())
}

func TestLocalityFromID(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		want    weatherunion.Locality
		wantErr error
	}{
		{name: "known id", id: "ZWL003467", want: weatherunion.ZWL003467},
		{name: "empty id", id: "", wantErr: weatherunion.ErrEmptyLocalityID},
		{name: "unknown id", id: "ZWL000000", wantErr: weatherunion.ErrUnknownLocality},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := weatherunion.LocalityFromID(tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, l)
		})
	}
}
