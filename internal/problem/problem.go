// Package problem parses the problem-configuration document (spec §6):
// a root document listing zero or more problem declarations tagged by
// model (overlapping, simpletiled, markov), plus the per-tileset
// tiles/neighbours document a simpletiled or markov problem references.
//
// Only two files in the whole reference corpus use encoding/xml, and
// neither is a dedicated third-party XML library; no pack repo pulls in
// one either, so this package stays on the standard library (see
// DESIGN.md's stdlib justification ledger).
package problem

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tessera-labs/wfc/internal/tile"
	"github.com/tessera-labs/wfc/internal/wfcerr"
)

// Document is the root of a problem-configuration file.
type Document struct {
	XMLName      xml.Name               `xml:"samples"`
	Overlapping  []OverlappingProblem   `xml:"overlapping"`
	SimpleTiled  []SimpleTiledProblem   `xml:"simpletiled"`
	Markov       []MarkovProblem        `xml:"markov"`
}

// OverlappingProblem declares one overlapping-model run.
type OverlappingProblem struct {
	Name          string `xml:"name,attr"`
	N             int    `xml:"N,attr"`
	Periodic      bool   `xml:"periodic,attr"`
	PeriodicInput *bool  `xml:"periodicInput,attr"`
	Ground        string `xml:"ground,attr"`
	Symmetry      int    `xml:"symmetry,attr"`
	Screenshots   int    `xml:"screenshots,attr"`
	Width         int    `xml:"width,attr"`
	Height        int    `xml:"height,attr"`
}

// Normalize fills in the defaults spec §6 specifies for an overlapping
// problem attribute left unset in the document.
func (p *OverlappingProblem) Normalize() {
	if p.N == 0 {
		p.N = 3
	}
	if p.PeriodicInput == nil {
		t := true
		p.PeriodicInput = &t
	}
	if p.Symmetry == 0 {
		p.Symmetry = 8
	}
	if p.Screenshots == 0 {
		p.Screenshots = 2
	}
	if p.Width == 0 {
		p.Width = 48
	}
	if p.Height == 0 {
		p.Height = 48
	}
}

// GroundEnabled reports whether the ground attribute's string value
// (zero -> false, nonzero -> true) enables ground pinning.
func (p OverlappingProblem) GroundEnabled() bool {
	return p.Ground != "" && p.Ground != "0"
}

// SimpleTiledProblem declares one tiling-model run against a named tileset
// subdirectory.
type SimpleTiledProblem struct {
	Name     string `xml:"name,attr"`
	Subset   string `xml:"subset,attr"`
	Periodic bool   `xml:"periodic,attr"`
	Width    int    `xml:"width,attr"`
	Height   int    `xml:"height,attr"`
}

// MarkovProblem declares one Markov-model run: a tileset plus one or more
// example images to infer neighbours from.
type MarkovProblem struct {
	Name     string   `xml:"name,attr"`
	Subset   string   `xml:"subset,attr"`
	Periodic bool     `xml:"periodic,attr"`
	Width    int      `xml:"width,attr"`
	Height   int      `xml:"height,attr"`
	Inputs   []string `xml:"inputs>input"`
}

// TileSet is the tiles/neighbours document (data.xml) a simpletiled or
// markov problem's Subset names.
type TileSet struct {
	XMLName   xml.Name      `xml:"set"`
	Size      int           `xml:"size,attr"`
	Subsets   []Subset      `xml:"subsets>subset"`
	Tiles     []TileDecl    `xml:"tiles>tile"`
	Neighbors []NeighborDecl `xml:"neighbors>neighbor"`
}

// Subset names a named grouping of tiles, for config that restricts a
// problem to a subset of a larger declared tileset.
type Subset struct {
	Name  string     `xml:"name,attr"`
	Tiles []TileRef  `xml:"tile"`
}

// TileRef references one tile by name within a Subset.
type TileRef struct {
	Name string `xml:"name,attr"`
}

// TileDecl declares one authored tile.
type TileDecl struct {
	Name     string  `xml:"name,attr"`
	Symmetry string  `xml:"symmetry,attr"`
	Weight   float64 `xml:"weight,attr"`
}

// Normalize fills in TileDecl's documented defaults.
func (t *TileDecl) Normalize() {
	if t.Symmetry == "" {
		t.Symmetry = "X"
	}
	if t.Weight == 0 {
		t.Weight = 1
	}
}

// NeighborDecl declares one authored adjacency: left and right are of the
// form "tileName" or "tileName O" with an orientation index.
type NeighborDecl struct {
	Left  string `xml:"left,attr"`
	Right string `xml:"right,attr"`
}

// ParseSymmetry resolves a tileset's single-letter symmetry name to a
// tile.Symmetry, defaulting unset input to SymX per spec §6's documented
// TileDecl default.
func ParseSymmetry(s string) (tile.Symmetry, error) {
	switch s {
	case "", "X":
		return tile.SymX, nil
	case "I":
		return tile.SymI, nil
	case "\\":
		return tile.SymBackslash, nil
	case "T":
		return tile.SymT, nil
	case "L":
		return tile.SymL, nil
	case "P":
		return tile.SymP, nil
	default:
		return 0, fmt.Errorf("problem: unknown symmetry letter %q: %w", s, wfcerr.ErrMalformedProblem)
	}
}

// ParseNeighborEndpoint splits a neighbour declaration's left/right
// attribute of the form "tileName" or "tileName O" into the tile name and
// orientation index (0 when omitted).
func ParseNeighborEndpoint(s string) (name string, orientation int, err error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return fields[0], 0, nil
	case 2:
		o, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			return "", 0, fmt.Errorf("problem: neighbor endpoint %q has non-numeric orientation: %w", s, wfcerr.ErrMalformedProblem)
		}
		return fields[0], o, nil
	default:
		return "", 0, fmt.Errorf("problem: malformed neighbor endpoint %q: %w", s, wfcerr.ErrMalformedProblem)
	}
}

// Load parses a problem-configuration document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, wfcerr.ErrMalformedProblem)
	}
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("problem: parse %s: %w: %v", path, wfcerr.ErrMalformedProblem, err)
	}
	for i := range doc.Overlapping {
		doc.Overlapping[i].Normalize()
	}
	return &doc, nil
}

// LoadTileSet parses a tileset document from path.
func LoadTileSet(path string) (*TileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read tileset %s: %w", path, wfcerr.ErrMalformedProblem)
	}
	var ts TileSet
	if err := xml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("problem: parse tileset %s: %w: %v", path, wfcerr.ErrMalformedProblem, err)
	}
	if ts.Size == 0 {
		return nil, fmt.Errorf("problem: tileset %s declares zero tile size: %w", path, wfcerr.ErrMalformedProblem)
	}
	for i := range ts.Tiles {
		ts.Tiles[i].Normalize()
	}
	return &ts, nil
}
