package geo

// BoundingBox is the smallest lat/lon box covering a set of points.
type BoundingBox struct {
	north, south, east, west float64
}

func NewBoundingBox(lats, lons []float64) BoundingBox {
	if len(lats) == 0 || len(lons) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{
		north: lats[0], south: lats[0],
		east: lons[0], west: lons[0],
	}
	for i := 1; i < len(lats); i++ {
		if lats[i] > bb.north {
			bb.north = lats[i]
		}
		if lats[i] < bb.south {
			bb.south = lats[i]
		}
		if lons[i] > bb.east {
			bb.east = lons[i]
		}
		if lons[i] < bb.west {
			bb.west = lons[i]
		}
	}
	return bb
}

func (bb BoundingBox) North() float64 { return bb.north }
func (bb BoundingBox) South() float64 { return bb.south }
func (bb BoundingBox) East() float64  { return bb.east }
func (bb BoundingBox) West() float64  { return bb.west }

func (bb BoundingBox) Contains(lat, lon float64) bool {
	if lat < bb.south || lat > bb.north {
		return false
	}
	if lon < bb.west || lon > bb.east {
		return false
	}
	return true
}
