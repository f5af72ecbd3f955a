package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/lintang-b-s/intersection-graph/pkg/export"
	"github.com/lintang-b-s/intersection-graph/pkg/graph"

	"go.uber.org/zap"
)

var (
	graphFile  = flag.String("f", "manhattan_intersections.json", "intersection record file produced by the extractor")
	exportFile = flag.String("o", "manhattan_graph_web.json", "web-app export output path")
)

func main() {
	flag.Parse()

	zapLog, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer zapLog.Sync()

	g := graph.LoadFile(*graphFile, zapLog)
	if g.IsEmpty() {
		log.Fatalf("no intersections loaded from %s, run the extractor first", *graphFile)
	}

	fmt.Println("=== Intersection Graph Demo ===")

	fmt.Println("\n1. Finding intersections on Broadway:")
	broadway := g.FindByStreet("Broadway")
	fmt.Printf("Found %d Broadway intersections\n", len(broadway))
	for i, node := range broadway {
		if i == 5 {
			break
		}
		streets := node.StreetNames
		if len(streets) > 3 {
			streets = streets[:3]
		}
		fmt.Printf("   - %s (%.4f, %.4f)\n", strings.Join(streets, " & "), node.Lat, node.Lng)
	}

	fmt.Println("\n2. Finding nearest intersection to Times Square (40.7580, -73.9855):")
	nearest, ok := g.NearestTo(40.7580, -73.9855)
	if ok {
		info, _ := g.DescribeIntersection(nearest.ID)
		fmt.Printf("   Nearest: %s\n", strings.Join(nearest.StreetNames, " & "))

		fmt.Printf("\n3. Detailed info for intersection %s:\n", nearest.ID)
		fmt.Printf("   Streets: %s\n", strings.Join(info.Streets, ", "))
		fmt.Printf("   Type: %s\n", info.Type)
		fmt.Printf("   Neighbors: %d\n", info.NeighborCount)
		for i, neighbor := range info.Neighbors {
			if i == 3 {
				break
			}
			streets := neighbor.Streets
			if len(streets) > 2 {
				streets = streets[:2]
			}
			fmt.Printf("     - %s (%.0fm away)\n", strings.Join(streets, " & "), neighbor.DistanceMeters)
		}
	}

	fmt.Println("\n4. Finding shortest path between intersections:")
	nodes := g.Nodes()
	if len(nodes) >= 2 {
		start := nodes[0].ID
		end := nodes[len(nodes)-1].ID
		if len(nodes) > 10 {
			end = nodes[10].ID
		}

		path, distance := g.ShortestPath(start, end)
		if len(path) > 0 {
			fmt.Printf("   From: %s\n", strings.Join(nodes[0].StreetNames, " & "))
			fmt.Printf("   Path length: %d intersections\n", len(path))
			fmt.Printf("   Total distance: %.0f meters\n", distance)
		} else {
			fmt.Println("   No route between the sampled intersections")
		}
	}

	fmt.Println("\n5. Exporting web-optimized format:")
	doc, err := export.Build(g)
	if err != nil {
		log.Fatal(err)
	}
	if err := export.WriteFile(*exportFile, doc); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("   Exported %d nodes and %d edges to %s\n",
		doc.Metadata.TotalNodes, doc.Metadata.TotalEdges, *exportFile)
}
