// Package osmparser extracts street intersections from an openstreetmap .pbf
// extract. An intersection is a node shared by at least two named highways;
// its connections are the nearest intersections on each way through it.
package osmparser

import (
	"context"
	"os"
	"sort"
	"strconv"

	"github.com/lintang-b-s/intersection-graph/pkg/graph"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

type NodeMapContainer struct {
	nodeMap map[osm.NodeID]*osm.Node
}

func (nm *NodeMapContainer) SetNodeMap(nodeMap map[osm.NodeID]*osm.Node) {
	nm.nodeMap = nodeMap
}

func (nm *NodeMapContainer) GetNode(id osm.NodeID) *osm.Node {
	return nm.nodeMap[id]
}

// highway values that represent drivable/walkable streets; footways, service
// roads etc. do not form street intersections in the exported graph.
var validHighwayTags = map[string]bool{
	"motorway":       true,
	"trunk":          true,
	"primary":        true,
	"secondary":      true,
	"tertiary":       true,
	"unclassified":   true,
	"residential":    true,
	"motorway_link":  true,
	"trunk_link":     true,
	"primary_link":   true,
	"secondary_link": true,
	"tertiary_link":  true,
	"living_street":  true,
	"pedestrian":     true,
}

type streetWay struct {
	id      int64
	name    string
	nodeIDs []osm.NodeID
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func isStreetWay(way *osm.Way) (string, bool) {
	tag := way.TagMap()
	if !validHighwayTags[tag["highway"]] {
		return "", false
	}
	name := tag["name"]
	if name == "" {
		return "", false
	}
	return name, true
}

// ParseOSM scans mapfile twice (ways, then node coordinates) and assembles the
// intersection record set the graph is built from.
func ParseOSM(mapfile string) (map[string]graph.IntersectionRecord, error) {
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bar := newProgressBar(3, "[cyan][1/3]Scanning streets...")

	ways := []streetWay{}
	wayNodeUsage := make(map[osm.NodeID]int)
	nodeStreetNames := make(map[osm.NodeID]map[string]bool)

	scanner := osmpbf.New(context.Background(), f, 1)
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}

		way := o.(*osm.Way)
		name, ok := isStreetWay(way)
		if !ok {
			continue
		}

		nodeIDs := make([]osm.NodeID, 0, len(way.Nodes))
		for _, wayNode := range way.Nodes {
			nodeIDs = append(nodeIDs, wayNode.ID)
			wayNodeUsage[wayNode.ID]++
			if nodeStreetNames[wayNode.ID] == nil {
				nodeStreetNames[wayNode.ID] = make(map[string]bool)
			}
			nodeStreetNames[wayNode.ID][name] = true
		}
		ways = append(ways, streetWay{id: int64(way.ID), name: name, nodeIDs: nodeIDs})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, err
	}
	scanner.Close()
	bar.Add(1)

	// an intersection is a node shared by >=2 named street ways, either two
	// crossing streets or two segments of one street meeting at a corner
	isIntersection := make(map[osm.NodeID]bool)
	for nodeID, usage := range wayNodeUsage {
		if usage >= 2 {
			isIntersection[nodeID] = true
		}
	}

	bar.Describe("[cyan][2/3]Loading node coordinates...")
	fNode, err := os.Open(mapfile)
	if err != nil {
		return nil, err
	}
	defer fNode.Close()

	ctr := NodeMapContainer{nodeMap: make(map[osm.NodeID]*osm.Node)}

	scannerNode := osmpbf.New(context.Background(), fNode, 1)
	for scannerNode.Scan() {
		o := scannerNode.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if isIntersection[node.ID] {
			ctr.nodeMap[node.ID] = node
		}
	}
	if err := scannerNode.Err(); err != nil {
		scannerNode.Close()
		return nil, err
	}
	scannerNode.Close()
	bar.Add(1)

	bar.Describe("[cyan][3/3]Assembling intersections...")
	records := make(map[string]graph.IntersectionRecord)
	connections := make(map[osm.NodeID]map[osm.NodeID]bool)

	for _, way := range ways {
		// consecutive intersections along the way connect to each other
		prev := osm.NodeID(0)
		for _, nodeID := range way.nodeIDs {
			if !isIntersection[nodeID] || ctr.GetNode(nodeID) == nil {
				continue
			}
			if prev != 0 {
				if connections[prev] == nil {
					connections[prev] = make(map[osm.NodeID]bool)
				}
				if connections[nodeID] == nil {
					connections[nodeID] = make(map[osm.NodeID]bool)
				}
				connections[prev][nodeID] = true
				connections[nodeID][prev] = true
			}
			prev = nodeID
		}
	}

	for nodeID, node := range ctr.nodeMap {
		id := formatNodeID(nodeID)
		lat, lng := node.Lat, node.Lon

		streetNames := make([]string, 0, len(nodeStreetNames[nodeID]))
		for name := range nodeStreetNames[nodeID] {
			streetNames = append(streetNames, name)
		}
		sort.Strings(streetNames)

		neighborIDs := make([]string, 0, len(connections[nodeID]))
		for neighbor := range connections[nodeID] {
			neighborIDs = append(neighborIDs, formatNodeID(neighbor))
		}
		sort.Strings(neighborIDs)

		intersectionType := "regular"
		if len(streetNames) >= 3 {
			intersectionType = "complex"
		}

		records[id] = graph.IntersectionRecord{
			ID:               id,
			Lat:              &lat,
			Lng:              &lng,
			StreetNames:      streetNames,
			Connections:      neighborIDs,
			IntersectionType: intersectionType,
		}
	}
	bar.Add(1)

	return records, nil
}

func formatNodeID(id osm.NodeID) string {
	return "node_" + strconv.FormatInt(int64(id), 10)
}
