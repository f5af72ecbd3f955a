package graph

import (
	"strings"

	"github.com/lintang-b-s/intersection-graph/pkg/datastructure"
	"github.com/lintang-b-s/intersection-graph/pkg/geo"
)

// Graph is an immutable set of street intersections keyed by id. Nodes are
// owned by the graph; adjacency is resolved through the id map on every
// traversal, never through pointers between nodes. Connectivity is treated as
// symmetric for path finding even when the source data records an edge on one
// side only, so consumers always check membership instead of trusting the
// stored relation.
type Graph struct {
	nodes map[string]datastructure.IntersectionNode
	order []string // deterministic iteration order, fixed at build time
}

func New() *Graph {
	return &Graph{
		nodes: make(map[string]datastructure.IntersectionNode),
	}
}

// NewFromNodes builds a graph holding the given nodes. Iteration order of
// every query follows the order of the slice. Later duplicates of an id
// overwrite earlier ones.
func NewFromNodes(nodes []datastructure.IntersectionNode) *Graph {
	g := New()
	for _, node := range nodes {
		if _, ok := g.nodes[node.ID]; !ok {
			g.order = append(g.order, node.ID)
		}
		g.nodes[node.ID] = node
	}
	return g
}

func (g *Graph) Size() int {
	return len(g.nodes)
}

func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0
}

func (g *Graph) Node(id string) (datastructure.IntersectionNode, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// Nodes returns every intersection in the graph's iteration order.
func (g *Graph) Nodes() []datastructure.IntersectionNode {
	nodes := make([]datastructure.IntersectionNode, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NeighborsOf returns the intersections one hop away from id. Connection
// entries whose id is not in the graph are skipped. An unknown id yields an
// empty result, not an error.
func (g *Graph) NeighborsOf(id string) []datastructure.IntersectionNode {
	node, ok := g.nodes[id]
	if !ok {
		return nil
	}

	neighbors := make([]datastructure.IntersectionNode, 0, len(node.Connections))
	for _, neighborID := range node.Connections {
		if neighbor, ok := g.nodes[neighborID]; ok {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// NearestTo returns the intersection closest to (lat, lng) by haversine
// distance, scanning every node. The first minimum in iteration order wins.
// ok is false only when the graph is empty.
func (g *Graph) NearestTo(lat, lng float64) (nearest datastructure.IntersectionNode, ok bool) {
	minDist := -1.0
	for _, id := range g.order {
		node := g.nodes[id]
		dist := geo.HaversineDistance(lat, lng, node.Lat, node.Lng)
		if minDist < 0 || dist < minDist {
			minDist = dist
			nearest = node
			ok = true
		}
	}
	return
}

// FindByStreet returns every intersection whose street names contain name,
// case-insensitively, in iteration order. An empty name matches every
// intersection that has at least one street name.
func (g *Graph) FindByStreet(name string) []datastructure.IntersectionNode {
	name = strings.ToLower(name)

	var results []datastructure.IntersectionNode
	for _, id := range g.order {
		node := g.nodes[id]
		for _, streetName := range node.StreetNames {
			if strings.Contains(strings.ToLower(streetName), name) {
				results = append(results, node)
				break
			}
		}
	}
	return results
}

// IntersectionInfo is a presentation summary of one intersection.
type IntersectionInfo struct {
	ID            string         `json:"id"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Streets       []string       `json:"streets"`
	Type          string         `json:"type"`
	NeighborCount int            `json:"neighbor_count"`
	Neighbors     []NeighborInfo `json:"neighbors"`
}

type NeighborInfo struct {
	ID             string   `json:"id"`
	Streets        []string `json:"streets"`
	DistanceMeters float64  `json:"distance_meters"`
}

// DescribeIntersection summarizes an intersection and its reachable neighbors
// with the distance to each. ok is false for an unknown id.
func (g *Graph) DescribeIntersection(id string) (IntersectionInfo, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return IntersectionInfo{}, false
	}

	neighbors := g.NeighborsOf(id)
	info := IntersectionInfo{
		ID:            node.ID,
		Lat:           node.Lat,
		Lng:           node.Lng,
		Streets:       node.StreetNames,
		Type:          node.IntersectionType,
		NeighborCount: len(neighbors),
		Neighbors:     make([]NeighborInfo, 0, len(neighbors)),
	}
	for _, neighbor := range neighbors {
		info.Neighbors = append(info.Neighbors, NeighborInfo{
			ID:      neighbor.ID,
			Streets: neighbor.StreetNames,
			DistanceMeters: geo.HaversineDistance(node.Lat, node.Lng,
				neighbor.Lat, neighbor.Lng),
		})
	}
	return info, true
}
