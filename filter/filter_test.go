package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/holowatch/holodex"
)

func testVideos() []holodex.Video {
	return []holodex.Video{
		{
			ID:          "v1",
			Title:       "【Karaoke】Singing Stream",
			Topic:       "singing",
			Type:        holodex.VideoTypeStream,
			Status:      holodex.VideoStatusLive,
			LiveViewers: 12000,
			Channel: &holodex.Channel{
				ID:   "UC1",
				Name: "Pekora Ch.",
				Org:  "Hololive",
			},
		},
		{
			ID:     "v2",
			Title:  "Minecraft clip compilation",
			Topic:  "minecraft",
			Type:   holodex.VideoTypeClip,
			Status: holodex.VideoStatusPast,
			Channel: &holodex.Channel{
				ID:    "UC2",
				Name:  "Clipper",
				Org:   "Independents",
				Group: "Clippers",
			},
		},
		{
			ID:          "v3",
			Title:       "Zatsudan",
			Topic:       "talk",
			Type:        holodex.VideoTypeStream,
			Status:      holodex.VideoStatusLive,
			LiveViewers: 300,
			// No channel attached.
		},
	}
}

func TestCompileErrors(t *testing.T) {
	compiler := NewExprCompiler()

	tests := []struct {
		name       string
		expression string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"syntax error", "Topic =="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.Compile(tt.expression)
			var cerr *CompilationError
			require.ErrorAs(t, err, &cerr)
		})
	}
}

func TestEvaluate(t *testing.T) {
	compiler := NewExprCompiler()
	videos := testVideos()

	tests := []struct {
		name       string
		expression string
		expected   []string
	}{
		{"by status helper", `isLive()`, []string{"v1", "v3"}},
		{"by clip helper", `isClip()`, []string{"v2"}},
		{"by topic", `hasTopic("SINGING")`, []string{"v1"}},
		{"by org", `fromOrg("hololive")`, []string{"v1"}},
		{"by group", `fromGroup("Clippers")`, []string{"v2"}},
		{"by viewers", `isLive() && LiveViewers > 1000`, []string{"v1"}},
		{"title contains", `contains(Title, "karaoke")`, []string{"v1"}},
		{"missing channel is safe", `Org == ""`, []string{"v3"}},
		{"combined", `Status == "live" || Topic == "minecraft"`, []string{"v1", "v2", "v3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			var got []string
			for _, v := range Apply(f, videos) {
				got = append(got, v.ID)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpressionPreserved(t *testing.T) {
	compiler := NewExprCompiler()
	f, err := compiler.Compile(`isLive()`)
	require.NoError(t, err)
	assert.Equal(t, "isLive()", f.Expression())
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2)).(*exprCompiler)

	first, err := compiler.Compile(`isLive()`)
	require.NoError(t, err)
	second, err := compiler.Compile(`isLive()`)
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated compilation must hit the cache")
	assert.Equal(t, 1, compiler.cache.Size())

	_, err = compiler.Compile(`isClip()`)
	require.NoError(t, err)
	_, err = compiler.Compile(`isUpcoming()`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.cache.Size(), "cache evicts beyond its size")
}
