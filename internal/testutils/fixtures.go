// Package testutils provides shared fixtures for tests
package testutils

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
)

const (
	// TestSheetID is the default sheet ID for test fixtures
	TestSheetID = "sheet-test-001"

	// TestHeroName is the default hero name for test fixtures
	TestHeroName = "Captain Paragon"
)

// FixedRoller returns the same face for every roll and records the die sizes asked for
type FixedRoller struct {
	Face  int
	Err   error
	Sizes []int
}

var _ dice.Roller = (*FixedRoller)(nil)

// Roll returns Face
func (r *FixedRoller) Roll(size int) (int, error) {
	r.Sizes = append(r.Sizes, size)
	return r.Face, r.Err
}

// RollN returns count copies of Face
func (r *FixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		r.Sizes = append(r.Sizes, size)
		out[i] = r.Face
	}
	return out, r.Err
}

// Catalog returns the embedded catalog. It panics when the catalog does not load,
// which every test would report anyway.
func Catalog() *sheet.Catalog {
	cat, err := sheet.DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return cat
}

// CreateTestDocument creates a fresh sheet from the default catalog
func CreateTestDocument() *sheet.Document {
	return sheet.NewDocument(TestSheetID, Catalog())
}
