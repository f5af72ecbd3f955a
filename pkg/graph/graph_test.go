package graph

import (
	"testing"

	"github.com/lintang-b-s/intersection-graph/pkg/datastructure"
	"github.com/lintang-b-s/intersection-graph/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNode(id string, lat, lng float64, streets []string, connections ...string) datastructure.IntersectionNode {
	return datastructure.NewIntersectionNode(id, lat, lng, streets, connections, "")
}

// three midtown intersections along broadway, plus one on 5th avenue
func midtownGraph() *Graph {
	return NewFromNodes([]datastructure.IntersectionNode{
		newTestNode("n1", 40.7580, -73.9855, []string{"Broadway", "West 47th Street"}, "n2"),
		newTestNode("n2", 40.7614, -73.9776, []string{"Broadway", "West 53rd Street"}, "n1", "n3"),
		newTestNode("n3", 40.7527, -73.9772, []string{"Park Avenue", "East 42nd Street"}, "n2", "n4"),
		newTestNode("n4", 40.7484, -73.9857, []string{"5th Avenue", "West 34th Street"}, "n3"),
	})
}

func TestNeighborsOf(t *testing.T) {
	g := midtownGraph()

	t.Run("returns one-hop neighbors", func(t *testing.T) {
		neighbors := g.NeighborsOf("n2")
		require.Len(t, neighbors, 2)
		assert.Equal(t, "n1", neighbors[0].ID)
		assert.Equal(t, "n3", neighbors[1].ID)
	})

	t.Run("unknown id yields empty result", func(t *testing.T) {
		assert.Empty(t, g.NeighborsOf("nope"))
	})

	t.Run("dangling connection is silently skipped", func(t *testing.T) {
		g := NewFromNodes([]datastructure.IntersectionNode{
			newTestNode("a", 40.0, -73.0, []string{"A Street"}, "b", "ghost"),
			newTestNode("b", 40.1, -73.1, []string{"B Street"}, "a"),
		})
		neighbors := g.NeighborsOf("a")
		require.Len(t, neighbors, 1)
		assert.Equal(t, "b", neighbors[0].ID)
	})
}

func TestNearestTo(t *testing.T) {
	g := midtownGraph()

	t.Run("returns node with minimum haversine distance", func(t *testing.T) {
		probe := []float64{40.7589, -73.9851} // just north of times square
		nearest, ok := g.NearestTo(probe[0], probe[1])
		require.True(t, ok)

		// verify against direct computation over all nodes
		best := ""
		bestDist := -1.0
		for _, node := range g.Nodes() {
			d := geo.HaversineDistance(probe[0], probe[1], node.Lat, node.Lng)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = node.ID
			}
		}
		assert.Equal(t, best, nearest.ID)
		assert.Equal(t, "n1", nearest.ID)
	})

	t.Run("empty graph has no result", func(t *testing.T) {
		_, ok := New().NearestTo(40.0, -73.0)
		assert.False(t, ok)
	})

	t.Run("ties break by iteration order", func(t *testing.T) {
		g := NewFromNodes([]datastructure.IntersectionNode{
			newTestNode("first", 40.0, -73.0, []string{"A"}),
			newTestNode("second", 40.0, -73.0, []string{"B"}),
		})
		nearest, ok := g.NearestTo(40.0, -73.0)
		require.True(t, ok)
		assert.Equal(t, "first", nearest.ID)
	})
}

func TestFindByStreet(t *testing.T) {
	g := midtownGraph()

	t.Run("matches case-insensitively", func(t *testing.T) {
		lower := g.FindByStreet("broadway")
		upper := g.FindByStreet("BROADWAY")
		require.Len(t, lower, 2)
		require.Len(t, upper, 2)
		for i := range lower {
			assert.Equal(t, lower[i].ID, upper[i].ID)
		}
	})

	t.Run("substring match", func(t *testing.T) {
		results := g.FindByStreet("avenue")
		require.Len(t, results, 2)
		assert.Equal(t, "n3", results[0].ID)
		assert.Equal(t, "n4", results[1].ID)
	})

	t.Run("empty query matches every named intersection", func(t *testing.T) {
		assert.Len(t, g.FindByStreet(""), 4)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		assert.Empty(t, g.FindByStreet("canal"))
	})
}

func TestDescribeIntersection(t *testing.T) {
	g := midtownGraph()

	t.Run("summarizes node and neighbors", func(t *testing.T) {
		info, ok := g.DescribeIntersection("n2")
		require.True(t, ok)
		assert.Equal(t, "n2", info.ID)
		assert.Equal(t, []string{"Broadway", "West 53rd Street"}, info.Streets)
		assert.Equal(t, datastructure.RegularIntersection, info.Type)
		assert.Equal(t, 2, info.NeighborCount)
		require.Len(t, info.Neighbors, 2)

		n2, _ := g.Node("n2")
		n1, _ := g.Node("n1")
		wantDist := geo.HaversineDistance(n2.Lat, n2.Lng, n1.Lat, n1.Lng)
		assert.Equal(t, "n1", info.Neighbors[0].ID)
		assert.InDelta(t, wantDist, info.Neighbors[0].DistanceMeters, 1e-9)
	})

	t.Run("unknown id is absent", func(t *testing.T) {
		_, ok := g.DescribeIntersection("nope")
		assert.False(t, ok)
	})

	t.Run("neighbor count skips dangling references", func(t *testing.T) {
		g := NewFromNodes([]datastructure.IntersectionNode{
			newTestNode("a", 40.0, -73.0, []string{"A Street"}, "ghost", "b"),
			newTestNode("b", 40.1, -73.1, []string{"B Street"}, "a"),
		})
		info, ok := g.DescribeIntersection("a")
		require.True(t, ok)
		assert.Equal(t, 1, info.NeighborCount)
	})
}
