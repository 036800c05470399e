package suitability

import "strings"

// HumidityPreference describes how an activity tolerates humid air.
type HumidityPreference string

const (
	HumidityLow      HumidityPreference = "low"
	HumidityModerate HumidityPreference = "moderate"
	HumidityAny      HumidityPreference = "any"
)

// Profile is the weather requirement profile of an activity.
type Profile struct {
	Name                   string             `json:"name"`
	OptimalMin             float64            `json:"optimal_min"`
	OptimalMax             float64            `json:"optimal_max"`
	MaxWind                float64            `json:"max_wind"`
	PrecipitationTolerance float64            `json:"precipitation_tolerance"`
	HumidityPreference     HumidityPreference `json:"humidity_preference"`
	Outdoor                bool               `json:"outdoor"`
}

// catalog is the closed set of activities in definition order.
// Wind is in m/s, precipitation in mm.
var catalog = []Profile{
	{Name: "cricket", OptimalMin: 18, OptimalMax: 32, MaxWind: 10, PrecipitationTolerance: 0, HumidityPreference: HumidityModerate, Outdoor: true},
	{Name: "football", OptimalMin: 10, OptimalMax: 25, MaxWind: 12, PrecipitationTolerance: 2, HumidityPreference: HumidityModerate, Outdoor: true},
	{Name: "running", OptimalMin: 5, OptimalMax: 20, MaxWind: 10, PrecipitationTolerance: 1, HumidityPreference: HumidityLow, Outdoor: true},
	{Name: "cycling", OptimalMin: 10, OptimalMax: 25, MaxWind: 8, PrecipitationTolerance: 0.5, HumidityPreference: HumidityModerate, Outdoor: true},
	{Name: "walking", OptimalMin: 10, OptimalMax: 26, MaxWind: 12, PrecipitationTolerance: 1, HumidityPreference: HumidityAny, Outdoor: true},
	{Name: "picnic", OptimalMin: 18, OptimalMax: 28, MaxWind: 6, PrecipitationTolerance: 0, HumidityPreference: HumidityLow, Outdoor: true},
	{Name: "hiking", OptimalMin: 10, OptimalMax: 24, MaxWind: 10, PrecipitationTolerance: 0.5, HumidityPreference: HumidityModerate, Outdoor: true},
	{Name: "tennis", OptimalMin: 15, OptimalMax: 28, MaxWind: 6, PrecipitationTolerance: 0, HumidityPreference: HumidityModerate, Outdoor: true},
	{Name: "golf", OptimalMin: 15, OptimalMax: 28, MaxWind: 8, PrecipitationTolerance: 0.5, HumidityPreference: HumidityModerate, Outdoor: true},
	{Name: "swimming", OptimalMin: 24, OptimalMax: 34, MaxWind: 8, PrecipitationTolerance: 0.5, HumidityPreference: HumidityAny, Outdoor: true},
	{Name: "gardening", OptimalMin: 12, OptimalMax: 28, MaxWind: 10, PrecipitationTolerance: 1, HumidityPreference: HumidityAny, Outdoor: true},
	{Name: "shopping", OptimalMin: 5, OptimalMax: 35, MaxWind: 20, PrecipitationTolerance: 10, HumidityPreference: HumidityAny, Outdoor: false},
}

// Catalog returns a copy of the activity profiles in definition order.
func Catalog() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}

// ActivityNames lists catalog keys in definition order.
func ActivityNames() []string {
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}
	return names
}

// Lookup resolves an activity name to its profile.
func Lookup(name string) (Profile, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range catalog {
		if p.Name == key {
			return p, true
		}
	}
	return Profile{}, false
}
