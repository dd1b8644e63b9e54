package utils

import (
	"net/url"
	"strconv"
	"strings"

	"inventory-system/pkg/types"
)

type QueryParams struct {
	Filters   map[string]string
	Search    string
	SortBy    string
	SortOrder string
	Limit     uint64
	Offset    uint64
	Page      uint64
}

func ParseQuery(query url.Values) QueryParams {
	params := QueryParams{
		Filters:   make(map[string]string),
		Limit:     20,
		Offset:    0,
		Page:      1,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	for key, values := range query {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			filterKey := key[7 : len(key)-1]
			params.Filters[filterKey] = values[0]
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			params.Limit = l
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			params.Offset = o
			if params.Limit > 0 {
				params.Page = (o / params.Limit) + 1
			}
		}
	}
	// page only wins when offset was not given explicitly
	if pageStr := query.Get("page"); pageStr != "" && params.Offset == 0 {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			params.Page = p
			params.Offset = (p - 1) * params.Limit
		}
	}

	if search := query.Get("search"); search != "" {
		params.Search = search
	}

	if sort := query.Get("sort"); sort != "" {
		if strings.HasPrefix(sort, "-") {
			params.SortOrder = "desc"
			params.SortBy = sort[1:]
		} else {
			params.SortOrder = "asc"
			params.SortBy = sort
		}
	}
	return params
}

// ParseFilterFromQuery adapts the raw query parameters to the filter
// shape the repositories consume.
func ParseFilterFromQuery(query url.Values) types.Filter {
	params := ParseQuery(query)

	filter := types.Filter{
		Search:         params.Search,
		Sort:           map[string]string{params.SortBy: params.SortOrder},
		Filter:         make(map[string]interface{}, len(params.Filters)),
		Limit:          int(params.Limit),
		Offset:         int(params.Offset),
		Page:           int(params.Page),
		WithPagination: true,
	}
	for key, value := range params.Filters {
		filter.Filter[key] = value
	}
	return filter
}
