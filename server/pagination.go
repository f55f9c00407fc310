package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/mediastat/pkg/pagination"
)

// ParsePaginationParams extracts and validates pagination params from request
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{
		Page:     1,
		PageSize: 0,
	}

	qp := r.URL.Query()

	if pageStr := qp.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page parameter: must be positive integer")
		}
		params.Page = page
	}

	if pageSizeStr := qp.Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 0 {
			return params, fmt.Errorf("invalid pageSize parameter: must be non-negative integer")
		}
		params.PageSize = pageSize
	}

	return params, nil
}

// parseServerID reads the optional serverId query parameter
func parseServerID(r *http.Request) (*int64, error) {
	raw := r.URL.Query().Get("serverId")
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, fmt.Errorf("invalid serverId parameter: must be positive integer")
	}
	return &id, nil
}

// parseDays reads the optional days query parameter, 0 when absent
func parseDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, fmt.Errorf("invalid days parameter: must be positive integer")
	}
	return days, nil
}

func parsePathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id: must be positive integer")
	}
	return id, nil
}
