package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BiomeLabel turns a snake_case biome id into a title cased label:
// "frozen_river" becomes "Frozen River". A namespace prefix such as
// "minecraft:" is ignored.
func BiomeLabel(id string) string {
	if i := strings.LastIndex(id, ":"); i >= 0 {
		id = id[i+1:]
	}

	// A Caser holds state, so each call gets its own.
	caser := cases.Title(language.English)

	var words []string
	for _, part := range strings.Split(id, "_") {
		if part == "" {
			continue
		}
		words = append(words, caser.String(part))
	}
	return strings.Join(words, " ")
}
