package flexdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"padded day-first", "05-03-2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"unpadded fields", "1-2-2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"iso order rejected", "2024-03-05", time.Time{}, true},
		{"day overflow", "31-04-2024", time.Time{}, true},
		{"non leap february 29th", "29-02-2023", time.Time{}, true},
		{"non numeric field", "aa-03-2024", time.Time{}, true},
		{"two fields", "05-2024", time.Time{}, true},
		{"four fields", "05-03-20-24", time.Time{}, true},
		{"empty", "", time.Time{}, true},
		{"month zero", "05-00-2024", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLegacy(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparsable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("structured passes through at midnight", func(t *testing.T) {
		d := FromTime(time.Date(2024, 3, 5, 14, 30, 12, 0, time.UTC))
		got, err := d.Normalize()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("legacy string parsed day-first", func(t *testing.T) {
		got, err := FromString("05-03-2024").Normalize()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("zero value fails", func(t *testing.T) {
		_, err := FlexDate{}.Normalize()
		assert.ErrorIs(t, err, ErrUnparsable)
	})
}

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("typed timestamp is structured", func(t *testing.T) {
		var d FlexDate
		require.NoError(t, d.Scan(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
		assert.True(t, d.IsStructured())
	})

	t.Run("rfc3339 text is structured", func(t *testing.T) {
		var d FlexDate
		require.NoError(t, d.Scan("2024-03-05T00:00:00Z"))
		assert.True(t, d.IsStructured())

		got, err := d.Normalize()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("legacy text stays legacy", func(t *testing.T) {
		var d FlexDate
		require.NoError(t, d.Scan("05-03-2024"))
		assert.False(t, d.IsStructured())
		assert.Equal(t, "05-03-2024", d.Raw())
	})

	t.Run("unsupported type errors", func(t *testing.T) {
		var d FlexDate
		assert.Error(t, d.Scan(42))
	})
}

func TestValueRoundTrip(t *testing.T) {
	t.Parallel()

	orig := FromTime(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	v, err := orig.Value()
	require.NoError(t, err)

	var scanned FlexDate
	require.NoError(t, scanned.Scan(v))
	assert.True(t, scanned.IsStructured())

	raw := FromString("07-11-2023")
	v, err = raw.Value()
	require.NoError(t, err)
	assert.Equal(t, "07-11-2023", v)
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var d FlexDate
	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-03-05T00:00:00Z"`)))
	assert.True(t, d.IsStructured())

	require.NoError(t, d.UnmarshalJSON([]byte(`"05-03-2024"`)))
	assert.False(t, d.IsStructured())

	assert.Error(t, d.UnmarshalJSON([]byte(`42`)))
}
