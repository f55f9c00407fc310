package librarystats

import (
	"fmt"
	"math"
	"strings"

	"github.com/kasuboski/mediastat/pkg/mediasource"
	"github.com/oapi-codegen/nullable"
)

const (
	plexVideoStream     = 1
	jellyfinTicksPerMs  = 10_000
	jellyfinBitsPerKbit = 1000
)

// Fields are the values of one item that feed the library statistics.
// Zero means the server did not report the value.
type Fields struct {
	SizeBytes   int64
	DurationMs  int64
	BitrateKbps int64
	HDR         bool
	ShowID      string
	SeasonID    string
}

// Extractor reads the statistic fields of a backend specific item
type Extractor interface {
	Extract(item mediasource.Item) Fields
}

// ExtractorFor returns the extractor matching the items produced by a source of kind
func ExtractorFor(kind mediasource.Kind) (Extractor, error) {
	switch kind {
	case mediasource.KindPlex:
		return PlexExtractor{}, nil
	case mediasource.KindJellyfin, mediasource.KindEmby:
		return JellyfinExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", mediasource.ErrUnsupportedKind, kind)
	}
}

type PlexExtractor struct{}

// Extract reads the first media and its first part. HDR detection is approximate: any HEVC
// video stream counts as HDR along with bt2020 primaries and Dolby Vision.
func (PlexExtractor) Extract(item mediasource.Item) Fields {
	m := item.Plex
	if m == nil {
		return Fields{}
	}

	f := Fields{
		DurationMs: m.Duration,
		ShowID:     m.GrandparentRatingKey,
		SeasonID:   m.ParentRatingKey,
	}

	if len(m.Media) == 0 {
		return f
	}
	media := m.Media[0]
	if f.DurationMs == 0 {
		f.DurationMs = media.Duration
	}
	f.BitrateKbps = media.Bitrate

	var streams []mediasource.PlexStream
	if len(media.Part) > 0 {
		f.SizeBytes = media.Part[0].Size
		streams = media.Part[0].Stream
	}

	video, ok := plexVideo(streams)
	if !ok {
		video, ok = plexVideo(media.Stream)
	}
	if ok {
		f.HDR = strings.EqualFold(video.ColorPrimaries, "bt2020") ||
			video.DOVIPresent ||
			video.DOVIProfile > 0 ||
			strings.EqualFold(video.Codec, "hevc")
	} else {
		f.HDR = strings.EqualFold(media.VideoCodec, "hevc")
	}

	return f
}

func plexVideo(streams []mediasource.PlexStream) (mediasource.PlexStream, bool) {
	for _, s := range streams {
		if s.StreamType == plexVideoStream {
			return s, true
		}
	}
	return mediasource.PlexStream{}, false
}

type JellyfinExtractor struct{}

var jellyfinHDRRangeTypes = map[string]struct{}{
	"hdr10":         {},
	"hdr10plus":     {},
	"hlg":           {},
	"dovi":          {},
	"doviwithhdr10": {},
	"doviwithhlg":   {},
	"doviwithsdr":   {},
}

// Extract reads the first media source. Ticks are 100ns and bitrates are bits per second.
func (JellyfinExtractor) Extract(item mediasource.Item) Fields {
	it := item.Jellyfin
	if it == nil {
		return Fields{}
	}

	f := Fields{
		DurationMs: it.RunTimeTicks / jellyfinTicksPerMs,
		ShowID:     it.SeriesID,
		SeasonID:   it.SeasonID,
	}

	streams := it.MediaStreams
	if len(it.MediaSources) > 0 {
		source := it.MediaSources[0]
		f.SizeBytes = source.Size
		f.BitrateKbps = source.Bitrate / jellyfinBitsPerKbit
		if f.DurationMs == 0 {
			f.DurationMs = source.RunTimeTicks / jellyfinTicksPerMs
		}
		if len(streams) == 0 {
			streams = source.MediaStreams
		}
	}

	for _, s := range streams {
		if !strings.EqualFold(s.Type, "video") {
			continue
		}
		_, hdrType := jellyfinHDRRangeTypes[strings.ToLower(s.VideoRangeType)]
		f.HDR = strings.EqualFold(s.VideoRange, "hdr") || hdrType
		break
	}

	return f
}

// accumulator folds the fields of fetched items
type accumulator struct {
	show         bool
	items        int64
	sizeBytes    int64
	durationMs   int64
	bitrateSum   int64
	bitrateCount int64
	hdr          int64
	shows        map[string]struct{}
	seasons      map[string]struct{}
}

func newAccumulator(class mediasource.Class) *accumulator {
	a := &accumulator{show: class == mediasource.ClassShow}
	if a.show {
		a.shows = make(map[string]struct{})
		a.seasons = make(map[string]struct{})
	}
	return a
}

func (a *accumulator) add(f Fields) {
	a.items++
	if f.SizeBytes > 0 {
		a.sizeBytes += f.SizeBytes
	}
	if f.DurationMs > 0 {
		a.durationMs += f.DurationMs
	}
	if f.BitrateKbps > 0 {
		a.bitrateSum += f.BitrateKbps
		a.bitrateCount++
	}
	if f.HDR {
		a.hdr++
	}
	if a.show {
		if f.ShowID != "" {
			a.shows[f.ShowID] = struct{}{}
		}
		if f.SeasonID != "" {
			a.seasons[f.SeasonID] = struct{}{}
		}
	}
}

// stats returns the totals of the folded items before any extrapolation
func (a *accumulator) stats() LibraryItemStats {
	s := LibraryItemStats{
		TotalItems:      a.items,
		TotalSizeBytes:  a.sizeBytes,
		TotalDurationMs: a.durationMs,
		HDRItemCount:    a.hdr,
	}
	if a.bitrateCount > 0 {
		s.AvgBitrateKbps = int64(math.Round(float64(a.bitrateSum) / float64(a.bitrateCount)))
	}

	if a.show {
		shows := int64(len(a.shows))
		s.TotalShows = nullable.NewNullableWithValue(shows)
		s.TotalSeasons = nullable.NewNullableWithValue(int64(len(a.seasons)))
		s.TotalEpisodes = nullable.NewNullableWithValue(a.items)
		s.TotalItems = shows
	}

	return s
}
