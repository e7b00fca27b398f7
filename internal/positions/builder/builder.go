package builder

import (
	"github.com/vbb-change-positions/pkg/positions/models"
)

// SamePlatformPosition is used for both ends when arrival and departure
// share one platform.
const SamePlatformPosition = 0.5

// BuildEntry projects validated answers into one record.
func BuildEntry(p models.Props) models.Entry {
	return models.Entry{
		Station:     p.Station.ID,
		StationName: p.Station.Name,

		FromLines:       p.FromLines.Labels(),
		FromStation:     p.FromStation.ID,
		FromStationName: p.FromStation.Name,
		FromTrack:       p.FromTrack,
		FromPosition:    p.FromPosition,

		ToLines:       p.ToLines.Labels(),
		ToStation:     p.ToStation.ID,
		ToStationName: p.ToStation.Name,
		ToTrack:       p.ToTrack,
		ToPosition:    p.ToPosition,

		SamePlatform: p.SamePlatform,
	}
}

// Reverse mirrors a change: the departing side becomes the arriving one,
// positions are measured from the other platform end and directional line
// labels are swapped.
func Reverse(p models.Props, aliases Aliases) models.Props {
	return models.Props{
		Station:      p.Station,
		SamePlatform: p.SamePlatform,

		FromLines:    aliases.Reverse(p.ToLines),
		FromStation:  p.ToStation,
		FromTrack:    p.ToTrack,
		FromPosition: 1 - p.ToPosition,

		ToLines:    aliases.Reverse(p.FromLines),
		ToStation:  p.FromStation,
		ToTrack:    p.FromTrack,
		ToPosition: 1 - p.FromPosition,
	}
}

// BuildEntries returns the forward record and, if reverse is set, the
// record for the opposite direction.
func BuildEntries(p models.Props, aliases Aliases, reverse bool) []models.Entry {
	if p.SamePlatform {
		p.FromPosition = SamePlatformPosition
		p.ToPosition = SamePlatformPosition
	}

	entries := []models.Entry{BuildEntry(p)}
	if reverse {
		entries = append(entries, BuildEntry(Reverse(p, aliases)))
	}
	return entries
}
