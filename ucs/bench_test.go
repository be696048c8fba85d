package ucs_test

import (
	"testing"

	"github.com/katalvlaran/frontier/hexturn"
	"github.com/katalvlaran/frontier/ucs"
)

// BenchmarkSearch_HexGrid measures UCS over a 3×3 hex grid with one wall,
// corner to corner — non-unit costs keep the merge path busy.
func BenchmarkSearch_HexGrid(b *testing.B) {
	mask := [][]int{
		{1, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
	}
	p, err := hexturn.New(mask, hexturn.Cell{Col: 0, Row: 0}, hexturn.Cell{Col: 2, Row: 2})
	if err != nil {
		b.Fatal(err)
	}
	start := p.Start()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = ucs.Search(start, p); err != nil {
			b.Fatal(err)
		}
	}
}
