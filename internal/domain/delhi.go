package domain

// DelhiCatalog returns the built-in reference catalog of Delhi flood
// hotspots, municipal wards, and routable landmarks.
func DelhiCatalog() *Catalog {
	return NewCatalog(delhiHotspots, delhiWards, delhiLandmarks)
}

var delhiHotspots = []Hotspot{
	{ID: 1, Name: "Minto Bridge", Lat: 28.6324, Lng: 77.2188, Elevation: 213.0, DrainageScore: 2.5},
	{ID: 2, Name: "Zakhira Underpass", Lat: 28.6569, Lng: 77.2078, Elevation: 208.0, DrainageScore: 2.0},
	{ID: 3, Name: "ITO Crossing", Lat: 28.6284, Lng: 77.2428, Elevation: 215.0, DrainageScore: 3.0},
	{ID: 4, Name: "Ashram Chowk", Lat: 28.5569, Lng: 77.2544, Elevation: 210.0, DrainageScore: 2.8},
	{ID: 5, Name: "Najafgarh Drain Area", Lat: 28.6083, Lng: 77.0722, Elevation: 205.0, DrainageScore: 1.5},
	{ID: 6, Name: "Kashmere Gate", Lat: 28.6647, Lng: 77.2292, Elevation: 218.0, DrainageScore: 3.5},
	{ID: 7, Name: "Pul Prahladpur", Lat: 28.5061, Lng: 77.2775, Elevation: 208.5, DrainageScore: 2.2},
	{ID: 8, Name: "Civil Lines", Lat: 28.6875, Lng: 77.2281, Elevation: 220.0, DrainageScore: 3.8},
	{ID: 9, Name: "Dwarka Sector 10", Lat: 28.5764, Lng: 77.0497, Elevation: 212.0, DrainageScore: 2.7},
	{ID: 10, Name: "Connaught Place", Lat: 28.6328, Lng: 77.2197, Elevation: 214.0, DrainageScore: 3.2},
	{ID: 11, Name: "Laxmi Nagar", Lat: 28.6342, Lng: 77.2806, Elevation: 209.0, DrainageScore: 2.3},
	{ID: 12, Name: "Rohini Sector 16", Lat: 28.7431, Lng: 77.1181, Elevation: 221.0, DrainageScore: 3.6},
}

var delhiWards = []Ward{
	{
		ID:   "WARD_001",
		Name: "Karol Bagh",
		Bounds: []Geo{
			{28.6450, 77.1890}, {28.6550, 77.1890}, {28.6550, 77.2090},
			{28.6450, 77.2090}, {28.6450, 77.1890},
		},
		PumpsAvailable: 4, PumpsTotal: 5, DrainsDesilted: true, EmergencyContacts: 120,
	},
	{
		ID:   "WARD_002",
		Name: "Civil Lines",
		Bounds: []Geo{
			{28.6800, 77.2150}, {28.6900, 77.2150}, {28.6900, 77.2350},
			{28.6800, 77.2350}, {28.6800, 77.2150},
		},
		PumpsAvailable: 5, PumpsTotal: 5, DrainsDesilted: true, EmergencyContacts: 150,
	},
	{
		ID:   "WARD_003",
		Name: "Connaught Place",
		Bounds: []Geo{
			{28.6250, 77.2100}, {28.6400, 77.2100}, {28.6400, 77.2300},
			{28.6250, 77.2300}, {28.6250, 77.2100},
		},
		PumpsAvailable: 4, PumpsTotal: 5, DrainsDesilted: true, EmergencyContacts: 180,
	},
	{
		ID:   "WARD_004",
		Name: "Dwarka",
		Bounds: []Geo{
			{28.5700, 77.0400}, {28.5900, 77.0400}, {28.5900, 77.0600},
			{28.5700, 77.0600}, {28.5700, 77.0400},
		},
		PumpsAvailable: 2, PumpsTotal: 4, DrainsDesilted: false, EmergencyContacts: 95,
	},
	{
		ID:   "WARD_005",
		Name: "Laxmi Nagar",
		Bounds: []Geo{
			{28.6250, 77.2750}, {28.6450, 77.2750}, {28.6450, 77.2900},
			{28.6250, 77.2900}, {28.6250, 77.2750},
		},
		PumpsAvailable: 1, PumpsTotal: 3, DrainsDesilted: false, EmergencyContacts: 60,
	},
	{
		ID:   "WARD_006",
		Name: "Rohini",
		Bounds: []Geo{
			{28.7350, 77.1100}, {28.7500, 77.1100}, {28.7500, 77.1250},
			{28.7350, 77.1250}, {28.7350, 77.1100},
		},
		PumpsAvailable: 3, PumpsTotal: 4, DrainsDesilted: true, EmergencyContacts: 110,
	},
}

var delhiLandmarks = map[string]Geo{
	"CP":           {Lat: 28.6328, Lng: 77.2197},
	"Dwarka":       {Lat: 28.5764, Lng: 77.0497},
	"Minto Bridge": {Lat: 28.6324, Lng: 77.2188},
	"Karol Bagh":   {Lat: 28.6500, Lng: 77.1990},
	"Civil Lines":  {Lat: 28.6875, Lng: 77.2281},
}
