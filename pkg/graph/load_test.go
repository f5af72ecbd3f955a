package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeGraphFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intersections.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validGraphJSON = `{
	"intersections": {
		"n1": {
			"id": "n1", "lat": 40.7580, "lng": -73.9855,
			"street_names": ["Broadway", "West 47th Street"],
			"connections": ["n2"]
		},
		"n2": {
			"id": "n2", "lat": 40.7614, "lng": -73.9776,
			"street_names": ["Broadway", "West 53rd Street"],
			"connections": ["n1"],
			"intersection_type": "signalized"
		}
	}
}`

func TestLoadFile(t *testing.T) {
	log := zap.NewNop()

	t.Run("loads a valid record set", func(t *testing.T) {
		g := LoadFile(writeGraphFile(t, validGraphJSON), log)
		require.False(t, g.IsEmpty())
		assert.Equal(t, 2, g.Size())

		n2, ok := g.Node("n2")
		require.True(t, ok)
		assert.Equal(t, "signalized", n2.IntersectionType)

		n1, ok := g.Node("n1")
		require.True(t, ok)
		assert.Equal(t, "regular", n1.IntersectionType)
	})

	t.Run("missing file yields empty graph", func(t *testing.T) {
		g := LoadFile(filepath.Join(t.TempDir(), "nope.json"), log)
		assert.True(t, g.IsEmpty())
	})

	t.Run("malformed json yields empty graph", func(t *testing.T) {
		g := LoadFile(writeGraphFile(t, `{"intersections": {`), log)
		assert.True(t, g.IsEmpty())
	})

	t.Run("record missing a coordinate fails the whole set", func(t *testing.T) {
		g := LoadFile(writeGraphFile(t, `{
			"intersections": {
				"n1": {"id": "n1", "lat": 40.7580, "lng": -73.9855,
					"street_names": ["Broadway"], "connections": []},
				"n2": {"id": "n2", "lat": 40.7614,
					"street_names": ["Broadway"], "connections": []}
			}
		}`), log)
		assert.True(t, g.IsEmpty())
	})
}

func TestFromRecords(t *testing.T) {
	lat, lng := 40.7580, -73.9855

	t.Run("empty connections list is valid", func(t *testing.T) {
		g, err := FromRecords(map[string]IntersectionRecord{
			"n1": {ID: "n1", Lat: &lat, Lng: &lng,
				StreetNames: []string{"Broadway"}, Connections: []string{}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, g.Size())
	})

	t.Run("nil street_names is rejected", func(t *testing.T) {
		_, err := FromRecords(map[string]IntersectionRecord{
			"n1": {ID: "n1", Lat: &lat, Lng: &lng, Connections: []string{}},
		})
		assert.Error(t, err)
	})

	t.Run("iteration order is sorted by record key", func(t *testing.T) {
		g, err := FromRecords(map[string]IntersectionRecord{
			"b": {ID: "b", Lat: &lat, Lng: &lng,
				StreetNames: []string{"B"}, Connections: []string{}},
			"a": {ID: "a", Lat: &lat, Lng: &lng,
				StreetNames: []string{"A"}, Connections: []string{}},
			"c": {ID: "c", Lat: &lat, Lng: &lng,
				StreetNames: []string{"C"}, Connections: []string{}},
		})
		require.NoError(t, err)
		nodes := g.Nodes()
		require.Len(t, nodes, 3)
		assert.Equal(t, "a", nodes[0].ID)
		assert.Equal(t, "b", nodes[1].ID)
		assert.Equal(t, "c", nodes[2].ID)
	})
}
