package models

// Entry is one persisted interchange record. Station is the hub where the
// change happens, FromStation/ToStation are the previous and next stations
// of the arriving and departing services.
type Entry struct {
	Station     string `json:"station"`
	StationName string `json:"stationName"`

	FromLines       []string `json:"fromLines"`
	FromStation     string   `json:"fromStation"`
	FromStationName string   `json:"fromStationName"`
	FromTrack       string   `json:"fromTrack,omitempty"`
	FromPosition    float64  `json:"fromPosition"`

	ToLines       []string `json:"toLines"`
	ToStation     string   `json:"toStation"`
	ToStationName string   `json:"toStationName"`
	ToTrack       string   `json:"toTrack,omitempty"`
	ToPosition    float64  `json:"toPosition"`

	SamePlatform bool `json:"samePlatform"`
}

// Props holds the validated answers of one wizard run.
type Props struct {
	Station      Station
	SamePlatform bool

	FromLines    LineSet
	FromStation  Station
	FromTrack    string
	FromPosition float64

	ToLines    LineSet
	ToStation  Station
	ToTrack    string
	ToPosition float64
}
