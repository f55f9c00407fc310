package mediasource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	mhttp "github.com/kasuboski/mediastat/pkg/http"
)

// plex metadata type filters for /library/sections/{key}/all
const (
	plexTypeMovie   = "1"
	plexTypeEpisode = "4"
)

type PlexSectionsResponse struct {
	MediaContainer struct {
		Directory []PlexSection `json:"Directory"`
	} `json:"MediaContainer"`
}

type PlexSection struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type PlexContentResponse struct {
	MediaContainer struct {
		Size      int            `json:"size"`
		TotalSize int            `json:"totalSize"`
		Offset    int            `json:"offset"`
		Metadata  []PlexMetadata `json:"Metadata"`
	} `json:"MediaContainer"`
}

type PlexMetadata struct {
	RatingKey            string      `json:"ratingKey"`
	Type                 string      `json:"type"`
	Title                string      `json:"title"`
	ParentRatingKey      string      `json:"parentRatingKey,omitempty"`
	GrandparentRatingKey string      `json:"grandparentRatingKey,omitempty"`
	Duration             int64       `json:"duration,omitempty"`
	Media                []PlexMedia `json:"Media,omitempty"`
}

type PlexMedia struct {
	Bitrate    int64        `json:"bitrate,omitempty"`
	Duration   int64        `json:"duration,omitempty"`
	VideoCodec string       `json:"videoCodec,omitempty"`
	Part       []PlexPart   `json:"Part,omitempty"`
	Stream     []PlexStream `json:"Stream,omitempty"`
}

type PlexPart struct {
	Size     int64        `json:"size,omitempty"`
	Duration int64        `json:"duration,omitempty"`
	File     string       `json:"file,omitempty"`
	Stream   []PlexStream `json:"Stream,omitempty"`
}

// PlexStream is a video, audio or subtitle stream. streamType 1 is video.
type PlexStream struct {
	StreamType     int    `json:"streamType,omitempty"`
	Codec          string `json:"codec,omitempty"`
	ColorPrimaries string `json:"colorPrimaries,omitempty"`
	DOVIPresent    bool   `json:"DOVIPresent,omitempty"`
	DOVIProfile    int    `json:"DOVIProfile,omitempty"`
}

type PlexSource struct {
	client *client
}

// NewPlexSource creates a source for the Plex server at baseURL authenticated with token
func NewPlexSource(baseURL, token string, httpClient mhttp.HTTPClient) (*PlexSource, error) {
	headers := http.Header{}
	headers.Set("X-Plex-Token", token)

	c, err := newClient(baseURL, headers, httpClient)
	if err != nil {
		return nil, err
	}

	return &PlexSource{client: c}, nil
}

func (p *PlexSource) Kind() Kind {
	return KindPlex
}

// ListLibraries lists the library sections of the server
func (p *PlexSource) ListLibraries(ctx context.Context) ([]Library, error) {
	var resp PlexSectionsResponse
	if err := p.client.getJSON(ctx, "/library/sections", nil, &resp); err != nil {
		return nil, err
	}

	libraries := make([]Library, 0, len(resp.MediaContainer.Directory))
	for _, d := range resp.MediaContainer.Directory {
		libraries = append(libraries, Library{
			ID:   d.Key,
			Name: d.Title,
			Type: d.Type,
		})
	}

	return libraries, nil
}

// CountItems asks for an empty page and reads the total size of the section
func (p *PlexSource) CountItems(ctx context.Context, library Library) (int, error) {
	resp, err := p.content(ctx, library, 0, 0)
	if err != nil {
		return 0, err
	}

	if resp.MediaContainer.TotalSize > 0 {
		return resp.MediaContainer.TotalSize, nil
	}
	return resp.MediaContainer.Size, nil
}

// FetchItems returns up to limit items of the section starting at offset
func (p *PlexSource) FetchItems(ctx context.Context, library Library, offset, limit int) ([]Item, error) {
	resp, err := p.content(ctx, library, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(resp.MediaContainer.Metadata))
	for i := range resp.MediaContainer.Metadata {
		items[i] = Item{Plex: &resp.MediaContainer.Metadata[i]}
	}

	return items, nil
}

func (p *PlexSource) content(ctx context.Context, library Library, start, size int) (*PlexContentResponse, error) {
	query := url.Values{}
	query.Set("type", plexMetadataType(library))
	query.Set("X-Plex-Container-Start", strconv.Itoa(start))
	query.Set("X-Plex-Container-Size", strconv.Itoa(size))

	var resp PlexContentResponse
	path := fmt.Sprintf("/library/sections/%s/all", url.PathEscape(library.ID))
	if err := p.client.getJSON(ctx, path, query, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// show libraries are walked episode by episode so every file is counted
func plexMetadataType(library Library) string {
	if library.Class() == ClassShow {
		return plexTypeEpisode
	}
	return plexTypeMovie
}
