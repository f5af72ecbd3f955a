package export

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/intersection-graph/pkg/datastructure"
	"github.com/lintang-b-s/intersection-graph/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportTestGraph() *graph.Graph {
	return graph.NewFromNodes([]datastructure.IntersectionNode{
		datastructure.NewIntersectionNode("n1", 40.7580, -73.9855,
			[]string{"Broadway"}, []string{"n2"}, ""),
		datastructure.NewIntersectionNode("n2", 40.7614, -73.9776,
			[]string{"Broadway", "West 53rd Street"}, []string{"n1", "n3"}, ""),
		datastructure.NewIntersectionNode("n3", 40.7527, -73.9772,
			[]string{"Park Avenue"}, []string{"n2", "ghost"}, "signalized"),
	})
}

func TestBuild(t *testing.T) {
	t.Run("empty graph is an error", func(t *testing.T) {
		_, err := Build(graph.New())
		assert.ErrorIs(t, err, ErrEmptyGraph)
	})

	t.Run("nodes carry id, coordinates, streets and type", func(t *testing.T) {
		doc, err := Build(exportTestGraph())
		require.NoError(t, err)
		require.Len(t, doc.Nodes, 3)
		assert.Equal(t, "n1", doc.Nodes[0].ID)
		assert.Equal(t, []string{"Broadway"}, doc.Nodes[0].Streets)
		assert.Equal(t, "regular", doc.Nodes[0].Type)
		assert.Equal(t, "signalized", doc.Nodes[2].Type)
	})

	t.Run("bidirectional records collapse to one edge", func(t *testing.T) {
		doc, err := Build(exportTestGraph())
		require.NoError(t, err)
		// n1<->n2 stored on both sides, n2->n3 on one, ghost dangling
		require.Len(t, doc.Edges, 2)
		assert.Equal(t, "n1", doc.Edges[0].From)
		assert.Equal(t, "n2", doc.Edges[0].To)
		assert.Equal(t, "n2", doc.Edges[1].From)
		assert.Equal(t, "n3", doc.Edges[1].To)
	})

	t.Run("one-directional record produces exactly one edge", func(t *testing.T) {
		g := graph.NewFromNodes([]datastructure.IntersectionNode{
			datastructure.NewIntersectionNode("a", 40.0, -73.0,
				[]string{"A"}, []string{"b"}, ""),
			datastructure.NewIntersectionNode("b", 40.1, -73.1,
				[]string{"B"}, []string{}, ""),
		})
		doc, err := Build(g)
		require.NoError(t, err)
		require.Len(t, doc.Edges, 1)
		assert.Equal(t, "a", doc.Edges[0].From)
		assert.Equal(t, "b", doc.Edges[0].To)
	})

	t.Run("edge distance is rounded to one decimal", func(t *testing.T) {
		doc, err := Build(exportTestGraph())
		require.NoError(t, err)
		for _, edge := range doc.Edges {
			scaled := edge.Distance * 10
			assert.InDelta(t, scaled, float64(int64(scaled+0.5)), 1e-6)
			assert.Greater(t, edge.Distance, 0.0)
		}
	})

	t.Run("metadata totals and bounds", func(t *testing.T) {
		doc, err := Build(exportTestGraph())
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Metadata.TotalNodes)
		assert.Equal(t, 2, doc.Metadata.TotalEdges)
		assert.Equal(t, "WGS84", doc.Metadata.CoordinateSystem)
		assert.Equal(t, 40.7614, doc.Metadata.Bounds.North)
		assert.Equal(t, 40.7527, doc.Metadata.Bounds.South)
		assert.Equal(t, -73.9772, doc.Metadata.Bounds.East)
		assert.Equal(t, -73.9855, doc.Metadata.Bounds.West)
	})
}

func TestWriteFile(t *testing.T) {
	doc, err := Build(exportTestGraph())
	require.NoError(t, err)

	t.Run("plain json round trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "web_graph.json")
		require.NoError(t, WriteFile(path, doc))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var got Document
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, doc.Metadata, got.Metadata)
		assert.Len(t, got.Edges, len(doc.Edges))
	})

	t.Run("gz suffix writes gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "web_graph.json.gz")
		require.NoError(t, WriteFile(path, doc))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		zr, err := gzip.NewReader(f)
		require.NoError(t, err)
		var got Document
		require.NoError(t, json.NewDecoder(zr).Decode(&got))
		assert.Equal(t, doc.Metadata, got.Metadata)
	})
}
