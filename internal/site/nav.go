package site

import (
	"strings"

	"github.com/ziadkadry99/folio/internal/pages"
)

// navItem is one entry of the header navigation.
type navItem struct {
	Title  string
	Href   string
	Active bool
}

// buildNav lists every page, marking active as the current one. basePath is
// the relative prefix back to the site root (e.g. "../" for detail pages).
func buildNav(active, basePath string) []navItem {
	all := pages.All()
	items := make([]navItem, len(all))
	for i, p := range all {
		items[i] = navItem{
			Title:  p.Title,
			Href:   basePath + p.Path,
			Active: p.Name == active,
		}
	}
	return items
}

// basePathFor returns the "../" prefix needed to reach the root from rel.
func basePathFor(rel string) string {
	return strings.Repeat("../", strings.Count(rel, "/"))
}
