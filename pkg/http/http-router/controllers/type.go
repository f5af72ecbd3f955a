package controllers

import (
	"github.com/lintang-b-s/intersection-graph/pkg/datastructure"
	"github.com/lintang-b-s/intersection-graph/pkg/export"
	"github.com/lintang-b-s/intersection-graph/pkg/graph"
)

type GraphService interface {
	NearestIntersection(lat, lng float64) (datastructure.IntersectionNode, bool)
	ShortestRoute(fromID, toID string) ([]string, float64)
	SearchStreet(name string) []datastructure.IntersectionNode
	DescribeIntersection(id string) (graph.IntersectionInfo, bool)
	ExportWebGraph(outputPath string) (export.Metadata, error)
}
