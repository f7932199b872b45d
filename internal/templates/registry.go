package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LocationInfo describes one template location under the templates root.
type LocationInfo struct {
	// Location is the directory name, used as the location tag.
	Location string

	// Manifest is the location's metadata (zero value when absent).
	Manifest Manifest
}

// ListLocations enumerates the template locations available under root,
// sorted by name.
func ListLocations(root string) ([]LocationInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading templates root %s: %w", root, err)
	}

	var locations []LocationInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		manifest, err := LoadManifest(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}

		locations = append(locations, LocationInfo{
			Location: entry.Name(),
			Manifest: manifest,
		})
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Location < locations[j].Location
	})

	return locations, nil
}
