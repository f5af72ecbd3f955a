package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/lintang-b-s/intersection-graph/pkg/datastructure"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// IntersectionRecord is the external input format for one intersection,
// keyed by id in the record set. Lat/Lng are pointers so that a record missing
// either field fails validation instead of silently loading as zero.
type IntersectionRecord struct {
	ID               string   `json:"id" validate:"required"`
	Lat              *float64 `json:"lat" validate:"required"`
	Lng              *float64 `json:"lng" validate:"required"`
	StreetNames      []string `json:"street_names"`
	Connections      []string `json:"connections"`
	IntersectionType string   `json:"intersection_type"`
}

type graphFile struct {
	Intersections map[string]IntersectionRecord `json:"intersections"`
}

// FromRecords bulk-builds a graph from a record set. Any malformed record
// fails the whole set: construction is all-or-nothing, there is no partially
// populated graph. Iteration order of the resulting graph is the sorted order
// of the record keys.
func FromRecords(records map[string]IntersectionRecord) (*Graph, error) {
	validate := validator.New()

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make([]datastructure.IntersectionNode, 0, len(records))
	for _, id := range ids {
		record := records[id]
		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("invalid intersection record %q: %w", id, err)
		}
		if record.StreetNames == nil || record.Connections == nil {
			return nil, fmt.Errorf("invalid intersection record %q: missing street_names or connections", id)
		}

		nodes = append(nodes, datastructure.NewIntersectionNode(record.ID,
			*record.Lat, *record.Lng, record.StreetNames, record.Connections,
			record.IntersectionType))
	}
	return NewFromNodes(nodes), nil
}

// LoadFile reads a JSON record set from path and builds the graph. A missing,
// unreadable, or structurally invalid file is recovered locally: the error is
// logged and an empty graph is returned, so callers must check IsEmpty before
// querying.
func LoadFile(path string, log *zap.Logger) *Graph {
	f, err := os.Open(path)
	if err != nil {
		log.Error("failed to open intersection file", zap.String("path", path), zap.Error(err))
		return New()
	}
	defer f.Close()

	var file graphFile
	if err := json.NewDecoder(f).Decode(&file); err != nil {
		log.Error("failed to decode intersection file", zap.String("path", path), zap.Error(err))
		return New()
	}

	g, err := FromRecords(file.Intersections)
	if err != nil {
		log.Error("failed to build intersection graph", zap.String("path", path), zap.Error(err))
		return New()
	}

	log.Info("loaded intersections", zap.String("path", path), zap.Int("count", g.Size()))
	return g
}
