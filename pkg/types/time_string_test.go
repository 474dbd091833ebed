package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "10:00", want: "10:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "garbage", input: "brunch", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 15, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("14:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("18:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	next, err := ts.AddMinutes(45)
	require.NoError(t, err)
	// Переход через полночь заворачивается внутри суток
	assert.Equal(t, TimeString("00:15"), next)

	same, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), same)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	// PostgreSQL TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan([]byte("07:15:00")))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 12, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:45"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("nope").Value()
	assert.Error(t, err)
}
