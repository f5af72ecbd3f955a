package graph_di

import (
	"github.com/lintang-b-s/intersection-graph/pkg/graph"
	"github.com/lintang-b-s/intersection-graph/pkg/kvdb"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the intersection graph once at startup. Records come from the kv
// store when it holds any, otherwise from the JSON file produced by the
// extractor. Either way a bad source yields an empty graph, never a crash.
func New(log *zap.Logger, kv *kvdb.KVDB) (*graph.Graph, error) {
	viper.SetDefault("GRAPH_FILE", "manhattan_intersections.json")

	records, err := kv.AllRecords()
	if err == nil && len(records) > 0 {
		g, err := graph.FromRecords(records)
		if err != nil {
			log.Error("failed to build graph from kv store", zap.Error(err))
			return graph.New(), nil
		}
		log.Info("loaded intersections from kv store", zap.Int("count", g.Size()))
		return g, nil
	}

	g := graph.LoadFile(viper.GetString("GRAPH_FILE"), log)
	if g.IsEmpty() {
		log.Warn("intersection graph is empty, queries will return no results")
	}
	return g, nil
}
