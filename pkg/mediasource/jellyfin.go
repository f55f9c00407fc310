package mediasource

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	mhttp "github.com/kasuboski/mediastat/pkg/http"
)

// fields needed to read file sizes, bitrates and HDR metadata
const jellyfinItemFields = "MediaSources,MediaStreams"

type JellyfinVirtualFolder struct {
	Name           string `json:"Name"`
	ItemID         string `json:"ItemId"`
	CollectionType string `json:"CollectionType"`
}

type JellyfinItemsResponse struct {
	Items            []JellyfinItem `json:"Items"`
	TotalRecordCount int            `json:"TotalRecordCount"`
	StartIndex       int            `json:"StartIndex"`
}

type JellyfinItem struct {
	ID           string                `json:"Id"`
	Name         string                `json:"Name"`
	Type         string                `json:"Type"`
	RunTimeTicks int64                 `json:"RunTimeTicks,omitempty"`
	SeriesID     string                `json:"SeriesId,omitempty"`
	SeasonID     string                `json:"SeasonId,omitempty"`
	MediaSources []JellyfinMediaSource `json:"MediaSources,omitempty"`
	MediaStreams []JellyfinMediaStream `json:"MediaStreams,omitempty"`
}

type JellyfinMediaSource struct {
	ID           string                `json:"Id"`
	Size         int64                 `json:"Size,omitempty"`
	Bitrate      int64                 `json:"Bitrate,omitempty"`
	RunTimeTicks int64                 `json:"RunTimeTicks,omitempty"`
	MediaStreams []JellyfinMediaStream `json:"MediaStreams,omitempty"`
}

type JellyfinMediaStream struct {
	Type           string `json:"Type"`
	Codec          string `json:"Codec,omitempty"`
	VideoRange     string `json:"VideoRange,omitempty"`
	VideoRangeType string `json:"VideoRangeType,omitempty"`
}

// JellyfinSource serves both Jellyfin and Emby, which share the items API
type JellyfinSource struct {
	client *client
	kind   Kind
}

// NewJellyfinSource creates a source for a Jellyfin or Emby server authenticated with an api key
func NewJellyfinSource(kind Kind, baseURL, apiKey string, httpClient mhttp.HTTPClient) (*JellyfinSource, error) {
	if kind != KindJellyfin && kind != KindEmby {
		return nil, ErrUnsupportedKind
	}

	headers := http.Header{}
	headers.Set("X-Emby-Token", apiKey)

	c, err := newClient(baseURL, headers, httpClient)
	if err != nil {
		return nil, err
	}

	return &JellyfinSource{client: c, kind: kind}, nil
}

func (j *JellyfinSource) Kind() Kind {
	return j.kind
}

// ListLibraries lists the virtual folders of the server. Mixed folders have no collection type.
func (j *JellyfinSource) ListLibraries(ctx context.Context) ([]Library, error) {
	var folders []JellyfinVirtualFolder
	if err := j.client.getJSON(ctx, "/Library/VirtualFolders", nil, &folders); err != nil {
		return nil, err
	}

	libraries := make([]Library, 0, len(folders))
	for _, f := range folders {
		libraries = append(libraries, Library{
			ID:   f.ItemID,
			Name: f.Name,
			Type: f.CollectionType,
		})
	}

	return libraries, nil
}

// CountItems requests an empty page with the total record count
func (j *JellyfinSource) CountItems(ctx context.Context, library Library) (int, error) {
	resp, err := j.items(ctx, library, 0, 0)
	if err != nil {
		return 0, err
	}

	return resp.TotalRecordCount, nil
}

// FetchItems returns up to limit items of the library starting at offset
func (j *JellyfinSource) FetchItems(ctx context.Context, library Library, offset, limit int) ([]Item, error) {
	resp, err := j.items(ctx, library, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(resp.Items))
	for i := range resp.Items {
		items[i] = Item{Jellyfin: &resp.Items[i]}
	}

	return items, nil
}

func (j *JellyfinSource) items(ctx context.Context, library Library, start, limit int) (*JellyfinItemsResponse, error) {
	query := url.Values{}
	query.Set("ParentId", library.ID)
	query.Set("Recursive", "true")
	query.Set("IncludeItemTypes", jellyfinItemTypes(library))
	query.Set("Fields", jellyfinItemFields)
	query.Set("StartIndex", strconv.Itoa(start))
	query.Set("Limit", strconv.Itoa(limit))
	query.Set("EnableTotalRecordCount", "true")
	query.Set("EnableImages", "false")

	var resp JellyfinItemsResponse
	if err := j.client.getJSON(ctx, "/Items", query, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func jellyfinItemTypes(library Library) string {
	if library.Class() == ClassShow {
		return "Episode"
	}
	return "Movie,Video,MusicVideo"
}
