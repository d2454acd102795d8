package holodex

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuery(t *testing.T) {
	org := "Hololive"
	empty := ""

	tests := []struct {
		name     string
		fields   []queryValue
		expected string
	}{
		{
			name:     "no fields",
			fields:   nil,
			expected: "",
		},
		{
			name:     "single scalar",
			fields:   []queryValue{qString("org", "Hololive")},
			expected: "org=Hololive",
		},
		{
			name: "delimiters between emitted fields only",
			fields: []queryValue{
				qOptString("org", nil),
				qString("sort", "name"),
				qInt("limit", 25),
				qOptString("lang", nil),
			},
			expected: "sort=name&limit=25",
		},
		{
			name:     "absent optional skipped",
			fields:   []queryValue{qOptString("org", nil)},
			expected: "",
		},
		{
			name:     "present empty string still emitted",
			fields:   []queryValue{qOptString("org", &empty)},
			expected: "org=",
		},
		{
			name:     "present optional",
			fields:   []queryValue{qOptString("org", &org)},
			expected: "org=Hololive",
		},
		{
			name:     "nil sequence skipped",
			fields:   []queryValue{qList[string]("lang", nil)},
			expected: "",
		},
		{
			name:     "empty sequence emitted with empty value",
			fields:   []queryValue{qList("lang", []string{})},
			expected: "lang=",
		},
		{
			name:     "sequence comma joined",
			fields:   []queryValue{qList("lang", []string{"en", "ja", "id"})},
			expected: "lang=en,ja,id",
		},
		{
			name:     "sequence elements individually encoded",
			fields:   []queryValue{qList("topic", []string{"singing together", "a&b"})},
			expected: "topic=singing%20together,a%26b",
		},
		{
			name:     "enum renders symbolic name",
			fields:   []queryValue{qEnum("type", ChannelTypeVtuber), qEnum("order", OrderDesc)},
			expected: "type=vtuber&order=desc",
		},
		{
			name:     "unset enum skipped",
			fields:   []queryValue{qEnum("type", ChannelType("")), qInt("offset", 0)},
			expected: "offset=0",
		},
		{
			name:     "unicode encoded byte by byte",
			fields:   []queryValue{qString("topic", "日本語")},
			expected: "topic=%E6%97%A5%E6%9C%AC%E8%AA%9E",
		},
		{
			name:     "reserved characters escaped",
			fields:   []queryValue{qString("q", "a=b&c?d e+f/g")},
			expected: "q=a%3Db%26c%3Fd%20e%2Bf%2Fg",
		},
		{
			name:     "unreserved characters untouched",
			fields:   []queryValue{qString("k", "Az09-._~")},
			expected: "k=Az09-._~",
		},
		{
			name:     "booleans",
			fields:   []queryValue{qBool("paginated", true), qBool("dark", false)},
			expected: "paginated=true&dark=false",
		},
		{
			name:     "declaration order preserved",
			fields:   []queryValue{qString("z", "1"), qString("a", "2"), qString("m", "3")},
			expected: "z=1&a=2&m=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encodeQuery(tt.fields))
		})
	}
}

// TestEncodeQueryRoundTrip verifies that percent-decoding and splitting the
// output reconstructs the original values.
func TestEncodeQueryRoundTrip(t *testing.T) {
	fields := []queryValue{
		qString("title", "歌ってみた / cover & more"),
		qList("lang", []string{"en", "ja"}),
		qInt("offset", 42),
		qEnum("status", VideoStatusLive),
		qString("empty", ""),
	}

	encoded := encodeQuery(fields)
	require.NotContains(t, encoded, "+", "space must encode as %20, never +")

	got := map[string]string{}
	for _, pair := range strings.Split(encoded, "&") {
		key, value, found := strings.Cut(pair, "=")
		require.True(t, found, "every field must contain '='")
		decoded, err := url.QueryUnescape(value)
		require.NoError(t, err)
		got[key] = decoded
	}

	assert.Equal(t, map[string]string{
		"title":  "歌ってみた / cover & more",
		"lang":   "en,ja",
		"offset": "42",
		"status": "live",
		"empty":  "",
	}, got)
}

func TestChannelListOptionsQuery(t *testing.T) {
	t.Run("defaults emit only pagination", func(t *testing.T) {
		opts := ChannelListOptions{Limit: 25}
		assert.Equal(t, "offset=0&limit=25", encodeQuery(opts.queryFields()))
	})

	t.Run("full filter set in declaration order", func(t *testing.T) {
		opts := ChannelListOptions{
			Type:   ChannelTypeVtuber,
			Lang:   []string{"en", "ja"},
			Org:    String("Hololive"),
			Sort:   String("subscriber_count"),
			Order:  OrderDesc,
			Offset: 50,
			Limit:  25,
		}
		assert.Equal(t,
			"type=vtuber&lang=en,ja&org=Hololive&sort=subscriber_count&order=desc&offset=50&limit=25",
			encodeQuery(opts.queryFields()))
	})
}

func TestVideoListOptionsQuery(t *testing.T) {
	opts := VideoListOptions{
		ChannelID: String("UC5CwaMl1eIgY8h02uZw7u8A"),
		Status:    VideoStatusLive,
		Include:   []ExtraInfo{IncludeLiveInfo, IncludeDescription},
		Limit:     50,
	}
	assert.Equal(t,
		"channel_id=UC5CwaMl1eIgY8h02uZw7u8A&status=live&include=live_info,description&offset=0&limit=50",
		encodeQuery(opts.queryFields(false)))

	t.Run("paginated variant adds flag before pagination", func(t *testing.T) {
		assert.Contains(t, encodeQuery(opts.queryFields(true)), "paginated=true&offset=0&limit=50")
	})
}
