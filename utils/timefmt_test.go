package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:15", 555, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:15", 0, true},
		{"09:60", 0, true},
		{"0915", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ToMinutes(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			var malformed *MalformedTimeError
			assert.True(t, errors.As(err, &malformed), "input %q should yield MalformedTimeError", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestToTimeStringRoundTrip(t *testing.T) {
	// Every valid minute of day survives a format/parse round trip.
	for m := 0; m < 1440; m++ {
		got, err := ToMinutes(ToTimeString(m))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestCombineDateTime(t *testing.T) {
	assert.Equal(t, "2025-03-14 09:15:00", CombineDateTime("2025-03-14", 555))
	assert.Equal(t, "2025-03-14 00:00:00", CombineDateTime("2025-03-14", 0))
}
