// Package export builds the web-app boundary format: the full node list, a
// deduplicated undirected edge list with meter distances, and bounds metadata.
package export

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"strings"

	"github.com/lintang-b-s/intersection-graph/pkg/geo"
	"github.com/lintang-b-s/intersection-graph/pkg/graph"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/exp/slices"
)

var ErrEmptyGraph = errors.New("no intersections to export")

type Node struct {
	ID      string   `json:"id"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Streets []string `json:"streets"`
	Type    string   `json:"type"`
}

type Edge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"` // meters, rounded to 0.1
}

type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

type Metadata struct {
	TotalNodes       int    `json:"total_nodes"`
	TotalEdges       int    `json:"total_edges"`
	CoordinateSystem string `json:"coordinate_system"`
	Bounds           Bounds `json:"bounds"`
}

type Document struct {
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Metadata Metadata `json:"metadata"`
}

// Build assembles the export document from the graph's query surface. Each
// undirected edge appears once: the endpoint pair is keyed in lexicographic
// order so a connection recorded on either side (or both) collapses to a
// single entry. Dangling connections are skipped.
func Build(g *graph.Graph) (Document, error) {
	if g.IsEmpty() {
		return Document{}, ErrEmptyGraph
	}

	nodes := g.Nodes()

	doc := Document{
		Nodes: make([]Node, 0, len(nodes)),
		Edges: []Edge{},
	}

	lats := make([]float64, 0, len(nodes))
	lngs := make([]float64, 0, len(nodes))
	for _, node := range nodes {
		doc.Nodes = append(doc.Nodes, Node{
			ID:      node.ID,
			Lat:     node.Lat,
			Lng:     node.Lng,
			Streets: node.StreetNames,
			Type:    node.IntersectionType,
		})
		lats = append(lats, node.Lat)
		lngs = append(lngs, node.Lng)
	}

	seen := make(map[[2]string]bool)
	for _, node := range nodes {
		for _, neighborID := range node.Connections {
			neighbor, ok := g.Node(neighborID)
			if !ok {
				continue
			}

			pair := [2]string{node.ID, neighborID}
			if pair[0] > pair[1] {
				pair[0], pair[1] = pair[1], pair[0]
			}
			if seen[pair] {
				continue
			}
			seen[pair] = true

			dist := geo.HaversineDistance(node.Lat, node.Lng, neighbor.Lat, neighbor.Lng)
			doc.Edges = append(doc.Edges, Edge{
				From:     pair[0],
				To:       pair[1],
				Distance: math.Round(dist*10) / 10,
			})
		}
	}

	slices.SortFunc(doc.Edges, func(a, b Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})

	bb := geo.NewBoundingBox(lats, lngs)
	doc.Metadata = Metadata{
		TotalNodes:       len(doc.Nodes),
		TotalEdges:       len(doc.Edges),
		CoordinateSystem: "WGS84",
		Bounds: Bounds{
			North: bb.North(),
			South: bb.South(),
			East:  bb.East(),
			West:  bb.West(),
		},
	}
	return doc, nil
}

// Write streams the document as indented JSON.
func Write(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteFile writes the document to path. A .gz suffix switches to gzip
// compressed output.
func WriteFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		if err := Write(gz, doc); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	}
	return Write(f, doc)
}
