package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bakery-catalog/internal/config"
)

func newResolver(cloudName, assetBaseURL, mediaPrefix string) *Resolver {
	return NewResolver(&config.Config{
		CloudinaryCloudName: cloudName,
		AssetBaseURL:        assetBaseURL,
		MediaURLPrefix:      mediaPrefix,
	})
}

func TestResolveAbsoluteURLPassthrough(t *testing.T) {
	r := newResolver("demo", "https://cdn.example.com", "/media")

	for _, url := range []string{
		"http://images.example.com/cake.png",
		"https://images.example.com/cake.png",
		"HTTPS://IMAGES.EXAMPLE.COM/CAKE.PNG",
	} {
		assert.Equal(t, url, r.Resolve(url, "http", "ignored.example.com"))
	}
}

func TestResolveCloudinary(t *testing.T) {
	r := newResolver("demo", "", "/media")

	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/bakery/cake",
		r.Resolve("/cake.png", "https", "shop.example.com"))

	// No leading slash and a dotted name: only the final extension is dropped.
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/bakery/photos/cake.v2",
		r.Resolve("photos/cake.v2.png", "https", "shop.example.com"))
}

func TestResolveLocalFromRequest(t *testing.T) {
	r := newResolver("", "", "/media")

	assert.Equal(t,
		"https://shop.example.com/media/cake.png",
		r.Resolve("cake.png", "https", "shop.example.com"))

	assert.Equal(t,
		"http://localhost:5000/media/cake.png",
		r.Resolve("/cake.png", "http", "localhost:5000"))
}

func TestResolveLocalWithAssetBaseURL(t *testing.T) {
	// Trailing slashes on the base and on the prefix are stripped.
	r := newResolver("", "https://assets.example.com/", "/media/")

	assert.Equal(t,
		"https://assets.example.com/media/cake.png",
		r.Resolve("/cake.png", "http", "ignored.example.com"))
}

func TestResolveCustomMediaPrefix(t *testing.T) {
	r := newResolver("", "", "/static")

	assert.Equal(t,
		"http://shop.example.com/static/cake.png",
		r.Resolve("cake.png", "http", "shop.example.com"))
}

func TestResolveEmptyImage(t *testing.T) {
	r := newResolver("demo", "https://cdn.example.com", "/media")
	assert.Equal(t, "", r.Resolve("", "https", "shop.example.com"))
}
