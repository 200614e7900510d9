// file: service/backend.go

package service

import (
	"context"
	"ged-apae-console/client"
	"net/url"
	"strconv"
)

// IBackendClient is the part of client.Client the services depend on.
type IBackendClient interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
	DoMultipart(ctx context.Context, method, path string, fields map[string]string, files []client.FilePart, out any) error
	Download(ctx context.Context, path string) (*client.File, error)
}

// DefaultPageSize is the page size the backend listings are requested with.
const DefaultPageSize = 10

// pageQuery builds the paging parameters shared by every listing.
// sort is omitted when empty, termoBusca when blank.
func pageQuery(page int, sort, termoBusca string) url.Values {
	if page < 0 {
		page = 0
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(DefaultPageSize))
	if sort != "" {
		query.Set("sort", sort)
	}
	if termoBusca != "" {
		query.Set("termoBusca", termoBusca)
	}
	return query
}

func idPath(prefix string, id int64, suffix string) string {
	return prefix + strconv.FormatInt(id, 10) + suffix
}
