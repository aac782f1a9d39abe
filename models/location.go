package models

// Coordinates is a WGS84 point resolved from a postcode lookup. It is derived
// on demand and never persisted.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProfileLocation pins a profile to the static UK region/county/town
// hierarchy. Region, county and town hold directory-cased values selected
// through the location dropdowns.
type ProfileLocation struct {
	Region   string `bson:"region" json:"region,omitempty"`
	County   string `bson:"county" json:"county,omitempty"`
	Town     string `bson:"town" json:"town,omitempty"`
	Postcode string `bson:"postcode" json:"postcode,omitempty"`
}
