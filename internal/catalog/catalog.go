// Package catalog holds the immutable content the app decorates itself
// with: the quote list used in countdown emails and on the home page, the
// gift wishlist, and the photo gallery file lists.
//
// The catalog is loaded once at startup, either from a TOML file or from
// the built-in defaults, and passed explicitly to whoever needs it.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/BurntSushi/toml"
)

// Quote is one {text, author} record from the quote catalog.
type Quote struct {
	Text   string `toml:"text" json:"text"`
	Author string `toml:"author" json:"author"`
}

// Gift is one wishlist entry.
type Gift struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	Image       string `toml:"image" json:"image,omitempty"`
}

// Catalog is the full content bundle.
type Catalog struct {
	Quotes        []Quote  `toml:"quotes"`
	Gifts         []Gift   `toml:"gifts"`
	Gallery       []string `toml:"gallery"`
	SecretGallery []string `toml:"secret_gallery"`
}

// Load reads a catalog from a TOML file. Sections left empty in the file
// fall back to the built-in defaults, so a file can override just the
// quotes without redeclaring the galleries.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	def := Default()
	if len(c.Quotes) == 0 {
		c.Quotes = def.Quotes
	}
	if len(c.Gifts) == 0 {
		c.Gifts = def.Gifts
	}
	if len(c.Gallery) == 0 {
		c.Gallery = def.Gallery
	}
	if len(c.SecretGallery) == 0 {
		c.SecretGallery = def.SecretGallery
	}
	return &c, nil
}

// RandomQuote returns a uniformly random quote; repeats across calls are
// expected.
func (c *Catalog) RandomQuote() Quote {
	return c.Quotes[rand.IntN(len(c.Quotes))]
}
