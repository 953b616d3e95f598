// Package storage resolves opaque image references to retrievable URLs.
// The backend stores only references, never image bytes; upload itself is
// handled by an external collaborator.
package storage

import (
	"net/url"
	"strings"
)

// Resolver turns an opaque icon reference into a URL a client can fetch.
type Resolver interface {
	ResolveURL(ref string) string
}

// BaseURLResolver prefixes references with a public bucket base URL.
// References that are already absolute URLs pass through untouched, which
// keeps records written by the legacy system working.
type BaseURLResolver struct {
	baseURL string
}

func NewBaseURLResolver(baseURL string) *BaseURLResolver {
	return &BaseURLResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *BaseURLResolver) ResolveURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if r.baseURL == "" {
		return ref
	}
	return r.baseURL + "/" + url.PathEscape(ref) + "?alt=media"
}
