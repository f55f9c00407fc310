package manager

import (
	"time"

	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
)

// AddServerRequest registers a media server. Token is the Plex token or the Jellyfin/Emby api key.
type AddServerRequest struct {
	Name  string `json:"name" validate:"required,max=128"`
	Type  string `json:"type" validate:"required,oneof=plex jellyfin emby"`
	URL   string `json:"url" validate:"required,url"`
	Token string `json:"token" validate:"required"`
}

// ServerResponse describes a registered media server without its credentials
type ServerResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	URL       string     `json:"url"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func toServerResponse(server *model.MediaServer) ServerResponse {
	return ServerResponse{
		ID:        int64(server.ID),
		Name:      server.Name,
		Type:      server.Type,
		URL:       server.URL,
		CreatedAt: server.CreatedAt,
	}
}
