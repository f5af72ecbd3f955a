package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/lintang-b-s/intersection-graph/pkg/concurrent"
	"github.com/lintang-b-s/intersection-graph/pkg/graph"
	"github.com/lintang-b-s/intersection-graph/pkg/kvdb"
	"github.com/lintang-b-s/intersection-graph/pkg/osmparser"

	bolt "go.etcd.io/bbolt"
)

var (
	mapFile    = flag.String("f", "manhattan.osm.pbf", "openstreetmap pbf extract to pull intersections from")
	outputFile = flag.String("o", "manhattan_intersections.json", "output json record file")
	bboltPath  = flag.String("db", "intersections.db", "bbolt store for the extracted records")
)

const (
	kvBatchSize = 512
	kvWorkers   = 4
)

func main() {
	flag.Parse()

	records, err := osmparser.ParseOSM(*mapFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("extracted %d intersections", len(records))

	db, err := bolt.Open(*bboltPath, 0600, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	kv, err := kvdb.NewKVDB(db)
	if err != nil {
		log.Fatal(err)
	}

	worker := concurrent.NewBackgroundWorker(kvWorkers, kvWorkers*2,
		func(batch []graph.IntersectionRecord) {
			if err := kv.SaveRecords(batch); err != nil {
				log.Printf("failed to save record batch: %v", err)
			}
		})
	worker.Start()

	batch := make([]graph.IntersectionRecord, 0, kvBatchSize)
	for _, record := range records {
		batch = append(batch, record)
		if len(batch) == kvBatchSize {
			worker.TriggerProcessing(batch)
			batch = make([]graph.IntersectionRecord, 0, kvBatchSize)
		}
	}
	if len(batch) > 0 {
		worker.TriggerProcessing(batch)
	}
	worker.Close()

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]interface{}{"intersections": records}); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s and %s", *outputFile, *bboltPath)
}
