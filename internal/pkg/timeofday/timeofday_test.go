//go:build unit

package timeofday_test

import (
	"encoding/json"
	"testing"
	"time"

	"venue-booking/internal/pkg/timeofday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    timeofday.TimeOfDay
		wantErr bool
	}{
		{name: "hours and minutes", input: "14:30", want: timeofday.MustNew(14, 30)},
		{name: "with seconds", input: "09:05:59", want: timeofday.MustNew(9, 5)},
		{name: "end of day", input: "24:00", want: timeofday.MustNew(24, 0)},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timeofday.Parse(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, timeofday.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestArithmetic(t *testing.T) {
	start := timeofday.MustNew(13, 45)

	assert.Equal(t, timeofday.MustNew(13, 0), start.HourFloor())
	assert.False(t, start.OnTheHour())
	assert.Equal(t, timeofday.MustNew(15, 45), start.Add(2*time.Hour))
	assert.Equal(t, 45*time.Minute, timeofday.MustNew(14, 30).Sub(timeofday.MustNew(13, 45)))
	assert.Equal(t, "13:45", start.String())
}

func TestJSONRoundTrip(t *testing.T) {
	var payload struct {
		Start timeofday.TimeOfDay `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"08:15"}`), &payload))
	assert.Equal(t, timeofday.MustNew(8, 15), payload.Start)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:15"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":815}`), &payload))
}
