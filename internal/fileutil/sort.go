package fileutil

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/harrison/mdconcat/internal/models"
)

// SortEntries orders entries in place by relative path.
//
// Paths are compared with the root-locale collator at primary strength, so
// case, accent and width differences carry no weight. Paths the collator
// considers equal fall back to byte order of RelPath and then AbsPath, which
// keeps the order total and independent of traversal order.
func SortEntries(entries []models.FileEntry) {
	c := collate.New(language.Und, collate.Loose)

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if cmp := c.CompareString(a.RelPath, b.RelPath); cmp != 0 {
			return cmp < 0
		}
		if a.RelPath != b.RelPath {
			return a.RelPath < b.RelPath
		}
		return a.AbsPath < b.AbsPath
	})
}
