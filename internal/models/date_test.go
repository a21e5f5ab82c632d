package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unmarshalDate(t *testing.T, raw string) Date {
	t.Helper()
	var d Date
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return d
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "bare date",
			raw:  `"2024-01-15"`,
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 timestamp",
			raw:  `"2024-01-01T15:04:05Z"`,
			want: time.Date(2024, 1, 1, 15, 4, 5, 0, time.UTC),
		},
		{
			name: "rfc3339 with offset",
			raw:  `"2024-01-01T00:00:00+03:00"`,
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("", 3*60*60)),
		},
		{
			name: "empty string is zero value",
			raw:  `""`,
			want: time.Time{},
		},
		{
			name: "null is zero value",
			raw:  `null`,
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := unmarshalDate(t, tt.raw)
			assert.True(t, d.Equal(tt.want), "got %v, want %v", d.Time, tt.want)
		})
	}
}

func TestDate_UnmarshalJSON_RejectsOtherFormats(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15.01.2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2024-01-01 15:04:05"`), &d))
}

func TestDate_MarshalJSON_KeepsSourcePrecision(t *testing.T) {
	// чистая дата остаётся чистой датой
	bare, err := json.Marshal(unmarshalDate(t, `"2024-01-15"`))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(bare))

	// таймстамп не усекается до даты
	stamped, err := json.Marshal(unmarshalDate(t, `"2024-01-01T15:04:05Z"`))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T15:04:05Z"`, string(stamped))
}

func TestDate_RoundTripPreservesInstant(t *testing.T) {
	for _, raw := range []string{
		`"2024-01-15"`,
		`"2024-01-01T15:04:05Z"`,
		`"2024-01-01T00:00:00+03:00"`,
	} {
		t.Run(raw, func(t *testing.T) {
			first := unmarshalDate(t, raw)

			out, err := json.Marshal(first)
			require.NoError(t, err)
			second := unmarshalDate(t, string(out))

			assert.True(t, second.Equal(first.Time), "round trip changed %v to %v", first.Time, second.Time)
		})
	}
}

func TestSessionRecord_RoundTripKeepsUserCreated(t *testing.T) {
	created := unmarshalDate(t, `"2024-01-01T15:04:05Z"`)
	record := SessionRecord{
		User: User{
			Name:        "Alice",
			Credentials: Credentials{Username: "alice", Passphrase: "digest"},
			Active:      true,
			Created:     created,
		},
		Authenticated: true,
	}

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	var restored SessionRecord
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.True(t, restored.User.Created.Equal(created.Time),
		"persisted record changed created from %v to %v", created.Time, restored.User.Created.Time)
}
