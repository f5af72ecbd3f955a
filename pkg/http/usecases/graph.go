package usecases

import (
	"github.com/lintang-b-s/intersection-graph/pkg/datastructure"
	"github.com/lintang-b-s/intersection-graph/pkg/export"
	"github.com/lintang-b-s/intersection-graph/pkg/graph"

	"go.uber.org/zap"
)

// GraphService answers intersection queries against a built graph. The graph
// is immutable, so the service is safe for concurrent request handling.
type GraphService struct {
	log   *zap.Logger
	graph *graph.Graph
}

func New(log *zap.Logger, g *graph.Graph) *GraphService {
	return &GraphService{
		log:   log,
		graph: g,
	}
}

func (s *GraphService) NearestIntersection(lat, lng float64) (datastructure.IntersectionNode, bool) {
	return s.graph.NearestTo(lat, lng)
}

func (s *GraphService) ShortestRoute(fromID, toID string) ([]string, float64) {
	return s.graph.ShortestPath(fromID, toID)
}

func (s *GraphService) SearchStreet(name string) []datastructure.IntersectionNode {
	return s.graph.FindByStreet(name)
}

func (s *GraphService) DescribeIntersection(id string) (graph.IntersectionInfo, bool) {
	return s.graph.DescribeIntersection(id)
}

func (s *GraphService) ExportWebGraph(outputPath string) (export.Metadata, error) {
	doc, err := export.Build(s.graph)
	if err != nil {
		return export.Metadata{}, err
	}
	if err := export.WriteFile(outputPath, doc); err != nil {
		return export.Metadata{}, err
	}

	s.log.Info("exported web graph",
		zap.String("path", outputPath),
		zap.Int("nodes", doc.Metadata.TotalNodes),
		zap.Int("edges", doc.Metadata.TotalEdges),
	)
	return doc.Metadata, nil
}
