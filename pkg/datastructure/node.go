package datastructure

const (
	// classification used when a record does not specify one.
	RegularIntersection = "regular"
)

// IntersectionNode is one street intersection. Coordinates are WGS84 decimal
// degrees and never change after construction. Connections holds the ids of
// neighboring intersections as recorded in the source data; entries pointing at
// ids that are not in the graph are tolerated and skipped by every consumer.
type IntersectionNode struct {
	ID               string
	Lat              float64
	Lng              float64
	StreetNames      []string
	Connections      []string
	IntersectionType string
}

func NewIntersectionNode(id string, lat, lng float64, streetNames, connections []string,
	intersectionType string) IntersectionNode {
	if intersectionType == "" {
		intersectionType = RegularIntersection
	}
	return IntersectionNode{
		ID:               id,
		Lat:              lat,
		Lng:              lng,
		StreetNames:      streetNames,
		Connections:      connections,
		IntersectionType: intersectionType,
	}
}
