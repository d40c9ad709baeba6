// Package icons maps onboarding icon keys to Lucide sprite symbols.
//
// The onboarding page references icons by short string keys. Keys resolve
// against a fixed catalog; an unknown key is a hard error so a page never
// renders with a silently missing icon block.
package icons

import (
	"fmt"
)

const lucideSymbolPrefix = "lucide-"

// Icon is a resolved catalog entry.
type Icon struct {
	// Key is the catalog key the icon was resolved from.
	Key string
	// Name is the Lucide icon name backing the key.
	Name string
}

var lucideIconNames = map[string]string{
	"windows":  "app-window",
	"linux":    "terminal",
	"macos":    "laptop",
	"ios":      "smartphone",
	"android":  "tablet-smartphone",
	"firefox":  "flame",
	"download": "download",
}

// Resolve looks up an icon key in the catalog.
func Resolve(key string) (Icon, error) {
	name, ok := lucideIconNames[key]
	if !ok {
		return Icon{}, fmt.Errorf("icons: unknown icon key %q", key)
	}
	return Icon{Key: key, Name: name}, nil
}

// SymbolID returns the sprite symbol ID for the icon.
func (i Icon) SymbolID() string {
	return lucideSymbolPrefix + i.Name
}

// Keys returns every key the catalog resolves.
func Keys() []string {
	keys := make([]string, 0, len(lucideIconNames))
	for key := range lucideIconNames {
		keys = append(keys, key)
	}
	return keys
}

// Sprite returns the SVG sprite markup for the catalog icons.
func Sprite() string {
	return lucideSprite
}
