package services

import (
	"strings"

	"github.com/piresc/tumpangan/services/rides"
)

// staticRoutes resolves origins to interest areas from a fixed registry and
// returns matching distances; a stand-in for a real geocoding integration.
type staticRoutes struct {
	// distances keys are "origin|destination", lowercased
	distances map[string]float64
	areas     map[string]string
	defaultKm float64
}

// NewStaticRoutes creates a RouteResolver over a fixed route table. Unknown
// routes fall back to defaultKm; unknown origins resolve to no area.
func NewStaticRoutes(distances map[string]float64, areas map[string]string, defaultKm float64) rides.RouteResolver {
	d := make(map[string]float64, len(distances))
	for k, v := range distances {
		d[strings.ToLower(k)] = v
	}
	a := make(map[string]string, len(areas))
	for k, v := range areas {
		a[strings.ToLower(k)] = v
	}
	return &staticRoutes{distances: d, areas: a, defaultKm: defaultKm}
}

func routeKey(origin, destination string) string {
	return strings.ToLower(strings.TrimSpace(origin)) + "|" + strings.ToLower(strings.TrimSpace(destination))
}

func (r *staticRoutes) Distance(origin, destination string) float64 {
	if km, ok := r.distances[routeKey(origin, destination)]; ok {
		return km
	}
	// Route tables are usually one-directional; try the reverse leg.
	if km, ok := r.distances[routeKey(destination, origin)]; ok {
		return km
	}
	return r.defaultKm
}

func (r *staticRoutes) Area(origin string) (string, bool) {
	area, ok := r.areas[strings.ToLower(strings.TrimSpace(origin))]
	return area, ok
}
