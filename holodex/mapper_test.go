package holodex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveGroup(t *testing.T) {
	tests := []struct {
		name     string
		suborg   string
		expected string
	}{
		{"prefix stripped", "ABExample Group", "Example Group"},
		{"prefix only yields absent group", "AB", ""},
		{"single character yields absent group", "A", ""},
		{"empty yields absent group", "", ""},
		{"three characters keep one", "ABX", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveGroup(tt.suborg))
		})
	}
}

func TestMapChannel(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("minimal channel has no stats", func(t *testing.T) {
		ch, err := mapChannel(&rawChannel{ID: str("UCx")})
		require.NoError(t, err)
		assert.Equal(t, "UCx", ch.ID)
		assert.Nil(t, ch.Stats)
		assert.Empty(t, ch.Group)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := mapChannel(&rawChannel{Name: str("Pekora")})
		var merr *MissingFieldError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "id", merr.Field)
	})

	t.Run("full stats group", func(t *testing.T) {
		ch, err := mapChannel(&rawChannel{
			ID:              str("UCx"),
			Suborg:          str("ABExample Group"),
			VideoCount:      str("1523"),
			SubscriberCount: str("2340000"),
			ViewCount:       str("987654321"),
			ClipCount:       str("40210"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Example Group", ch.Group)
		require.NotNil(t, ch.Stats)
		assert.Equal(t, int64(1523), ch.Stats.VideoCount)
		assert.Equal(t, int64(2340000), ch.Stats.SubscriberCount)
		assert.Equal(t, int64(987654321), ch.Stats.ViewCount)
		assert.Equal(t, int64(40210), ch.Stats.ClipCount)
	})

	t.Run("video_count present makes siblings required", func(t *testing.T) {
		_, err := mapChannel(&rawChannel{
			ID:         str("UCx"),
			VideoCount: str("10"),
			// subscriber_count and the rest absent
		})
		var merr *MissingFieldError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "subscriber_count", merr.Field)
	})

	t.Run("malformed counter is a conversion error", func(t *testing.T) {
		_, err := mapChannel(&rawChannel{
			ID:              str("UCx"),
			VideoCount:      str("many"),
			SubscriberCount: str("1"),
			ViewCount:       str("1"),
			ClipCount:       str("1"),
		})
		var cerr *ConversionError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "video_count", cerr.Field)
	})
}

func TestMapVideoTimestamps(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("parsed into epoch seconds", func(t *testing.T) {
		v, err := mapVideo(&rawVideo{
			ID:          str("v1"),
			AvailableAt: str("2023-11-14T22:00:00Z"),
			StartActual: str("2023-11-14T22:05:30+09:00"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1699999200), v.AvailableAt)
		assert.Equal(t, int64(1699967130), v.StartActual)
		assert.Zero(t, v.EndActual, "absent timestamp defaults to zero")
	})

	t.Run("malformed timestamp is its own error kind", func(t *testing.T) {
		_, err := mapVideo(&rawVideo{
			ID:          str("v1"),
			AvailableAt: str("yesterday"),
		})
		var terr *InvalidTimestampError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "available_at", terr.Field)
		assert.Equal(t, "yesterday", terr.Value)
	})
}

func TestMapVideoNestedChannel(t *testing.T) {
	str := func(s string) *string { return &s }

	v, err := mapVideo(&rawVideo{
		ID: str("v1"),
		Channel: &rawChannel{
			ID:     str("UCx"),
			Name:   str("Ch. Example"),
			Org:    str("Hololive"),
			Suborg: str("ABGen 3"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, v.Channel)
	assert.Equal(t, "Gen 3", v.Channel.Group)

	t.Run("nested channel failure aborts the video", func(t *testing.T) {
		_, err := mapVideo(&rawVideo{
			ID:      str("v1"),
			Channel: &rawChannel{Name: str("no id")},
		})
		require.Error(t, err)
	})
}
