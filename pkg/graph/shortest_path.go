package graph

import (
	"container/heap"
	"math"

	"github.com/lintang-b-s/intersection-graph/pkg/geo"
)

type pqItem struct {
	nodeID string
	rank   float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].rank < pq[j].rank }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// ShortestPath runs Dijkstra between two intersections, weighting each edge by
// the haversine distance between its endpoints (computed per traversal, not
// stored). It returns the id sequence from startID to endID inclusive and the
// total distance in meters.
//
// When either endpoint is unknown, or endID is unreachable, the result is an
// empty path with +Inf distance. That is the normal "no route" answer, never an
// error. ShortestPath(x, x) returns ([x], 0).
func (g *Graph) ShortestPath(startID, endID string) ([]string, float64) {
	if _, ok := g.nodes[startID]; !ok {
		return []string{}, math.Inf(1)
	}
	if _, ok := g.nodes[endID]; !ok {
		return []string{}, math.Inf(1)
	}

	dist := make(map[string]float64, len(g.nodes))
	for id := range g.nodes {
		dist[id] = math.Inf(1)
	}
	dist[startID] = 0

	previous := make(map[string]string)
	visited := make(map[string]bool, len(g.nodes))

	pq := &priorityQueue{{nodeID: startID, rank: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		currentID := item.nodeID

		// stale entry for a node already finalized with a smaller distance
		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		if currentID == endID {
			break
		}

		current := g.nodes[currentID]
		for _, neighborID := range current.Connections {
			if visited[neighborID] {
				continue
			}
			neighbor, ok := g.nodes[neighborID]
			if !ok {
				// dangling connection, tolerated and skipped
				continue
			}

			edgeDist := geo.HaversineDistance(current.Lat, current.Lng,
				neighbor.Lat, neighbor.Lng)
			newDist := item.rank + edgeDist

			if newDist < dist[neighborID] {
				dist[neighborID] = newDist
				previous[neighborID] = currentID
				heap.Push(pq, &pqItem{nodeID: neighborID, rank: newDist})
			}
		}
	}

	if _, reached := previous[endID]; !reached && startID != endID {
		return []string{}, math.Inf(1)
	}

	path := []string{endID}
	for current := endID; current != startID; {
		current = previous[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[endID]
}
