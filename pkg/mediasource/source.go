// Package mediasource reads library inventories from Plex, Jellyfin and Emby servers.
package mediasource

import (
	"context"
	"errors"

	"golang.org/x/text/cases"
)

var (
	ErrUnauthorized     = errors.New("media server rejected credentials")
	ErrUnreachable      = errors.New("media server unreachable")
	ErrUnexpectedStatus = errors.New("unexpected media server response")
	ErrCircuitOpen      = errors.New("media server circuit open")
	ErrUnsupportedKind  = errors.New("unsupported media server type")
)

type Kind string

const (
	KindPlex     Kind = "plex"
	KindJellyfin Kind = "jellyfin"
	KindEmby     Kind = "emby"
)

// Class groups the free-form library types reported by the servers
type Class int

const (
	ClassUnsupported Class = iota
	ClassMovie
	ClassShow
)

func (c Class) String() string {
	switch c {
	case ClassMovie:
		return "movie"
	case ClassShow:
		return "show"
	default:
		return "unsupported"
	}
}

var fold = cases.Fold()

// Classify maps a backend library type onto the classes the statistics engine understands.
// Collections, box sets, playlists, music, photos and live tv are unsupported.
func Classify(libraryType string) Class {
	switch fold.String(libraryType) {
	case "movie", "movies", "homevideos", "musicvideos":
		return ClassMovie
	case "show", "tvshows":
		return ClassShow
	default:
		return ClassUnsupported
	}
}

type Library struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (l Library) Class() Class {
	return Classify(l.Type)
}

// Item is a raw library item. Exactly one field is set, matching the Kind of the source.
type Item struct {
	Plex     *PlexMetadata
	Jellyfin *JellyfinItem
}

// Source is a single media server
type Source interface {
	Kind() Kind
	ListLibraries(ctx context.Context) ([]Library, error)
	// CountItems returns the number of countable items in the library: movies for movie-like libraries
	// and episodes for show-like libraries
	CountItems(ctx context.Context, library Library) (int, error)
	FetchItems(ctx context.Context, library Library, offset, limit int) ([]Item, error)
}
