package domain

// Geo is a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RiskLevel is the ordinal flood hazard classification.
type RiskLevel int

const (
	LevelSafe     RiskLevel = 0
	LevelWarning  RiskLevel = 1
	LevelCritical RiskLevel = 2
)

// String returns the display label for a risk level.
func (l RiskLevel) String() string {
	switch l {
	case LevelSafe:
		return "safe"
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Hotspot is a known point location historically prone to flooding.
// Hotspots are immutable reference data created at process start.
type Hotspot struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Elevation     float64 `json:"elevation"`      // meters above sea level
	DrainageScore float64 `json:"drainage_score"` // higher = better drainage
}

// Point returns the hotspot's coordinate.
func (h Hotspot) Point() Geo {
	return Geo{Lat: h.Lat, Lng: h.Lng}
}

// Ward is an administrative area with a bounding region and flood-response
// infrastructure. Bounds is an ordered ring of points whose first and last
// point close the ring; containment tests use the ring's axis-aligned
// min/max corners, not true point-in-polygon.
type Ward struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Bounds            []Geo  `json:"bounds"`
	PumpsAvailable    int    `json:"pumps_available"`
	PumpsTotal        int    `json:"pumps_total"`
	DrainsDesilted    bool   `json:"drains_desilted"`
	EmergencyContacts int    `json:"emergency_contacts"`
}

// Contains reports whether a coordinate falls inside the ward's bounding
// rectangle. Both edges are inclusive, so a hotspot exactly on a boundary
// belongs to the ward. Overlapping wards may both claim the same hotspot.
func (w Ward) Contains(g Geo) bool {
	minLat, maxLat, minLng, maxLng := boundsRect(w.Bounds)
	return g.Lat >= minLat && g.Lat <= maxLat && g.Lng >= minLng && g.Lng <= maxLng
}

// boundsRect returns the axis-aligned extremes of a bounding ring.
func boundsRect(bounds []Geo) (minLat, maxLat, minLng, maxLng float64) {
	if len(bounds) == 0 {
		return 0, 0, 0, 0
	}
	minLat, maxLat = bounds[0].Lat, bounds[0].Lat
	minLng, maxLng = bounds[0].Lng, bounds[0].Lng
	for _, p := range bounds[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lng < minLng {
			minLng = p.Lng
		}
		if p.Lng > maxLng {
			maxLng = p.Lng
		}
	}
	return minLat, maxLat, minLng, maxLng
}

// DefaultLandmark is the city-center coordinate substituted for unknown
// landmark lookups.
var DefaultLandmark = Geo{Lat: 28.6139, Lng: 77.2090}

// Catalog is the read-only registry of hotspots, wards, and named landmarks.
// It is built once at startup and safe to share across concurrent requests;
// callers must not mutate the returned slices.
type Catalog struct {
	hotspots  []Hotspot
	wards     []Ward
	landmarks map[string]Geo
}

// NewCatalog builds a catalog from static reference data.
func NewCatalog(hotspots []Hotspot, wards []Ward, landmarks map[string]Geo) *Catalog {
	return &Catalog{hotspots: hotspots, wards: wards, landmarks: landmarks}
}

// Hotspots returns all known flood hotspots.
func (c *Catalog) Hotspots() []Hotspot {
	return c.hotspots
}

// Wards returns all registered wards.
func (c *Catalog) Wards() []Ward {
	return c.wards
}

// FindLandmark resolves a landmark name to a coordinate. Unknown names
// resolve to DefaultLandmark with ok=false; lookups never fail.
func (c *Catalog) FindLandmark(name string) (Geo, bool) {
	if g, ok := c.landmarks[name]; ok {
		return g, true
	}
	return DefaultLandmark, false
}

// FindWard resolves a ward by its code.
func (c *Catalog) FindWard(id string) (Ward, bool) {
	for _, w := range c.wards {
		if w.ID == id {
			return w, true
		}
	}
	return Ward{}, false
}
