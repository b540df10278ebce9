package media

import (
	"path"
	"strings"

	"bakery-catalog/internal/config"
)

// Resolver builds fully qualified image URLs for stored image references.
// Three strategies apply in priority order: absolute URLs pass through
// unchanged, a configured Cloudinary cloud name produces a CDN URL, and
// otherwise the image is served from the local media path.
type Resolver struct {
	cloudName    string
	assetBaseURL string
	mediaPrefix  string
}

func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		cloudName:    cfg.CloudinaryCloudName,
		assetBaseURL: cfg.AssetBaseURL,
		mediaPrefix:  cfg.MediaURLPrefix,
	}
}

// Resolve turns a stored image reference into the URL clients fetch.
// scheme and host come from the current request and are only used for
// the local strategy when no asset base URL is configured. An empty
// image reference resolves to an empty string.
func (r *Resolver) Resolve(imagePath, scheme, host string) string {
	if imagePath == "" {
		return ""
	}

	if isAbsoluteURL(imagePath) {
		return imagePath
	}

	if r.cloudName != "" {
		name := strings.TrimPrefix(imagePath, "/")
		name = strings.TrimSuffix(name, path.Ext(name))
		return "https://res.cloudinary.com/" + r.cloudName + "/image/upload/bakery/" + name
	}

	base := strings.TrimSuffix(r.assetBaseURL, "/")
	if base == "" {
		base = scheme + "://" + host
	}
	prefix := strings.TrimSuffix(r.mediaPrefix, "/")

	return base + prefix + "/" + strings.TrimLeft(imagePath, "/")
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
