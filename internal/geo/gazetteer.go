// Package geo holds a static gazetteer of Ghanaian regions and cities with
// approximate center coordinates, used to place aggregate results on a map.
package geo

import "strings"

// Place is a named location with approximate center coordinates.
type Place struct {
	Name           string   `json:"name"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	AlternateNames []string `json:"alternateNames,omitempty"`
}

// Bounds is the Ghana bounding box.
type Bounds struct {
	North, South, East, West float64
	CenterLat, CenterLng     float64
}

// GhanaBounds frames the whole country.
var GhanaBounds = Bounds{
	North: 11.1667, South: 4.7389, East: 1.1992, West: -3.2556,
	CenterLat: 7.9465, CenterLng: -1.0232,
}

// Places lists regions first, then major cities, then smaller Accra-area
// localities that show up as city values in the export.
var Places = []Place{
	{Name: "Greater Accra", Lat: 5.6037, Lng: -0.1870, AlternateNames: []string{"Accra", "Tema", "Madina"}},
	{Name: "Ashanti", Lat: 6.6885, Lng: -1.6244, AlternateNames: []string{"Kumasi", "Obuasi"}},
	{Name: "Western", Lat: 5.0527, Lng: -1.9821, AlternateNames: []string{"Takoradi", "Sekondi"}},
	{Name: "Central", Lat: 5.4315, Lng: -1.0587, AlternateNames: []string{"Cape Coast", "Elmina"}},
	{Name: "Eastern", Lat: 6.1000, Lng: -0.4500, AlternateNames: []string{"Koforidua", "Nkawkaw"}},
	{Name: "Volta", Lat: 6.6000, Lng: 0.4500, AlternateNames: []string{"Ho", "Hohoe"}},
	{Name: "Northern", Lat: 9.4000, Lng: -0.8500, AlternateNames: []string{"Tamale"}},
	{Name: "Upper East", Lat: 10.7500, Lng: -0.8500, AlternateNames: []string{"Bolgatanga", "Navrongo"}},
	{Name: "Upper West", Lat: 10.4000, Lng: -2.1500, AlternateNames: []string{"Wa"}},
	{Name: "Brong Ahafo", Lat: 7.5000, Lng: -1.6667, AlternateNames: []string{"Sunyani", "Techiman"}},

	{Name: "Accra", Lat: 5.5560, Lng: -0.1969},
	{Name: "Kumasi", Lat: 6.6885, Lng: -1.6244},
	{Name: "Tamale", Lat: 9.4008, Lng: -0.8393},
	{Name: "Takoradi", Lat: 4.8845, Lng: -1.7554},
	{Name: "Cape Coast", Lat: 5.1315, Lng: -1.2795},
	{Name: "Tema", Lat: 5.6698, Lng: -0.0166},
	{Name: "Koforidua", Lat: 6.0941, Lng: -0.2593},
	{Name: "Ho", Lat: 6.6000, Lng: 0.4667},
	{Name: "Sunyani", Lat: 7.3349, Lng: -2.3123},
	{Name: "Bolgatanga", Lat: 10.7855, Lng: -0.8514},
	{Name: "Wa", Lat: 10.0601, Lng: -2.5099},
	{Name: "Obuasi", Lat: 6.2000, Lng: -1.6667},

	{Name: "Dansoman", Lat: 5.5341, Lng: -0.2574},
	{Name: "Osu", Lat: 5.5500, Lng: -0.1833},
	{Name: "Labadi", Lat: 5.5607, Lng: -0.1467},
	{Name: "Kaneshie", Lat: 5.5667, Lng: -0.2333},
	{Name: "Achimota", Lat: 5.6167, Lng: -0.2167},
	{Name: "Kasoa", Lat: 5.5333, Lng: -0.4167},
	{Name: "Ashaiman", Lat: 5.6833, Lng: -0.0333},
	{Name: "Madina", Lat: 5.6681, Lng: -0.1667},
	{Name: "Teshie", Lat: 5.5833, Lng: -0.1000},
	{Name: "Nungua", Lat: 5.5833, Lng: -0.0667},
	{Name: "East Legon", Lat: 5.6350, Lng: -0.1550},
	{Name: "Spintex", Lat: 5.6350, Lng: -0.0850},
	{Name: "Airport Residential", Lat: 5.6050, Lng: -0.1750},
	{Name: "Adabraka", Lat: 5.5550, Lng: -0.2100},
	{Name: "Ridge", Lat: 5.5700, Lng: -0.2000},
}

// Locate matches a city or region name to coordinates: exact name match
// first, then alternate names, then substring match in either direction.
// Returns ok=false when nothing matches.
func Locate(cityOrRegion string) (lat, lng float64, ok bool) {
	normalized := strings.ToLower(strings.TrimSpace(cityOrRegion))
	if normalized == "" {
		return 0, 0, false
	}

	for _, p := range Places {
		if strings.ToLower(p.Name) == normalized {
			return p.Lat, p.Lng, true
		}
		for _, alt := range p.AlternateNames {
			if strings.ToLower(alt) == normalized {
				return p.Lat, p.Lng, true
			}
		}
	}

	for _, p := range Places {
		lower := strings.ToLower(p.Name)
		if strings.Contains(normalized, lower) || strings.Contains(lower, normalized) {
			return p.Lat, p.Lng, true
		}
	}

	return 0, 0, false
}
