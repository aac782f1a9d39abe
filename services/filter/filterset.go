// Package filter implements the in-memory profile filtering engine behind the
// browse/listing surface.
package filter

// FilterSet carries the active listing filters. Every member is optional; a
// zero value imposes no constraint. Active members are AND-combined, so
// adding a constraint can only narrow the result.
//
// Region, county and town hold directory-cased values (selected via dropdown
// or resolver) and are compared by exact equality against the stored profile
// location. Free-text location input goes through the directory resolver
// before it reaches a FilterSet.
type FilterSet struct {
	TextQuery          string
	Region             string
	County             string
	Town               string
	Gender             string
	AgeBucket          string
	Ethnicity          string
	Nationality        string
	BookingDuration    string
	RequiredActivities []string
}
