package mediasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		libraryType string
		want        Class
	}{
		{"movie", ClassMovie},
		{"Movies", ClassMovie},
		{"homevideos", ClassMovie},
		{"MusicVideos", ClassMovie},
		{"show", ClassShow},
		{"TVShows", ClassShow},
		{"boxsets", ClassUnsupported},
		{"collection", ClassUnsupported},
		{"artist", ClassUnsupported},
		{"music", ClassUnsupported},
		{"photo", ClassUnsupported},
		{"playlists", ClassUnsupported},
		{"livetv", ClassUnsupported},
		{"", ClassUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.libraryType, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.libraryType))
		})
	}
}

func TestLibrary_Class(t *testing.T) {
	assert.Equal(t, ClassShow, Library{Type: "show"}.Class())
	assert.Equal(t, "show", ClassShow.String())
	assert.Equal(t, "movie", ClassMovie.String())
	assert.Equal(t, "unsupported", ClassUnsupported.String())
}
