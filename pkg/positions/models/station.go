package models

// Station is a stop as returned by the station directory.
// ID is the VBB stop identifier (9 or 12 digits), kept as a digit string.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Line is a service calling at a station.
type Line struct {
	Name    string `json:"name"`
	Product string `json:"product"` // "subway", "suburban", "tram", "bus", ...
}

const (
	ProductSubway   = "subway"
	ProductSuburban = "suburban"
)
