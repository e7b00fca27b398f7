package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/vbb-change-positions/internal/common/logger"
	"github.com/vbb-change-positions/internal/directory"
	"github.com/vbb-change-positions/internal/directory/colors"
	"github.com/vbb-change-positions/internal/positions/builder"
	"github.com/vbb-change-positions/internal/positions/validate"
	"github.com/vbb-change-positions/pkg/positions/models"
)

const (
	suggestionLimit     = 5
	suggestionSeparator = " – "
)

// Wizard walks the user through one interchange and builds its entries.
// The first invalid answer ends the run.
type Wizard struct {
	prompt  Prompter
	dir     directory.Directory
	colors  colors.Table
	aliases builder.Aliases
	logger  logger.Logger
}

func New(prompt Prompter, dir directory.Directory, colors colors.Table, aliases builder.Aliases, logger logger.Logger) *Wizard {
	return &Wizard{
		prompt:  prompt,
		dir:     dir,
		colors:  colors,
		aliases: aliases,
		logger:  logger,
	}
}

// Run asks all questions in order and returns one or two entries.
func (w *Wizard) Run(ctx context.Context) ([]models.Entry, error) {
	var p models.Props
	var err error

	arrivalHub, err := w.askStation(ctx, "From/Arrival station?")
	if err != nil {
		return nil, fmt.Errorf("arrival station: %w", err)
	}
	p.Station = arrivalHub

	departureHub := arrivalHub
	raw, err := w.prompt.Station("To/Departure station? (leave empty to set to same as arrival station)", w.suggest(ctx))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) != "" {
		if departureHub, err = w.parseStation(ctx, raw); err != nil {
			return nil, fmt.Errorf("departure station: %w", err)
		}
	}
	if departureHub.ID != arrivalHub.ID {
		w.logger.Info("Arrival and departure hub differ", "arrival", arrivalHub.ID, "departure", departureHub.ID)
	}

	if p.SamePlatform, err = w.prompt.Confirm("Arrival and departure the same platform?"); err != nil {
		return nil, err
	}

	// arriving side
	if p.FromStation, err = w.askStation(ctx, "Previous station?"); err != nil {
		return nil, fmt.Errorf("previous station: %w", err)
	}
	if p.FromLines, err = w.askLines(ctx, "From lines (multiple selections allowed)?", arrivalHub); err != nil {
		return nil, fmt.Errorf("from lines: %w", err)
	}
	if p.FromTrack, err = w.askTrack("From track (optional)?"); err != nil {
		return nil, err
	}
	if p.FromPosition, err = w.askPosition("From position?", p.SamePlatform); err != nil {
		return nil, fmt.Errorf("from position: %w", err)
	}

	// departing side
	if p.ToStation, err = w.askStation(ctx, "Next station?"); err != nil {
		return nil, fmt.Errorf("next station: %w", err)
	}
	if p.ToLines, err = w.askLines(ctx, "To lines (multiple selections allowed)?", departureHub); err != nil {
		return nil, fmt.Errorf("to lines: %w", err)
	}
	if p.ToTrack, err = w.askTrack("To track (optional)?"); err != nil {
		return nil, err
	}
	if p.ToPosition, err = w.askPosition("To position?", p.SamePlatform); err != nil {
		return nil, fmt.Errorf("to position: %w", err)
	}

	reverse, err := w.prompt.Confirm("Also add reverse route?")
	if err != nil {
		return nil, err
	}

	entries := builder.BuildEntries(p, w.aliases, reverse)
	w.logger.Info("Entries built",
		"station", p.Station.ID,
		"count", len(entries),
		"same_platform", p.SamePlatform,
		"reverse", reverse)
	return entries, nil
}

func (w *Wizard) askStation(ctx context.Context, msg string) (models.Station, error) {
	raw, err := w.prompt.Station(msg, w.suggest(ctx))
	if err != nil {
		return models.Station{}, err
	}
	return w.parseStation(ctx, raw)
}

func (w *Wizard) parseStation(ctx context.Context, raw string) (models.Station, error) {
	s, err := validate.ParseStation(ctx, w.dir, stationAnswer(raw))
	if err != nil {
		return models.Station{}, err
	}
	w.logger.Debug("Station resolved", "input", raw, "id", s.ID, "name", s.Name)
	return s, nil
}

func (w *Wizard) askLines(ctx context.Context, msg string, hub models.Station) (models.LineSet, error) {
	lines, err := w.dir.LinesAt(ctx, hub.ID)
	if err != nil {
		return nil, fmt.Errorf("listing lines at %s: %w", hub.Name, err)
	}
	lines = directory.ChoosableLines(lines)
	if len(lines) == 0 {
		return nil, &validate.ValidationError{
			Field: "lines",
			Msg:   fmt.Sprintf("no subway or suburban lines at %s", hub.Name),
		}
	}

	choices := make([]LineChoice, 0, len(lines))
	for _, l := range lines {
		c, ok := w.colors.Lookup(l.Product, l.Name)
		choices = append(choices, LineChoice{Line: l, Color: c, HasColor: ok})
	}

	sel, err := w.prompt.Lines(msg, choices)
	if err != nil {
		return nil, err
	}
	if sel, err = validate.ParseLineSelection(sel); err != nil {
		return nil, err
	}
	return sel.Set(), nil
}

func (w *Wizard) askTrack(msg string) (string, error) {
	raw, err := w.prompt.Text(msg)
	if err != nil {
		return "", err
	}
	return validate.ParseTrack(raw), nil
}

func (w *Wizard) askPosition(msg string, samePlatform bool) (float64, error) {
	if samePlatform {
		return builder.SamePlatformPosition, nil
	}
	raw, err := w.prompt.Text(msg)
	if err != nil {
		return 0, err
	}
	return validate.ParsePosition(raw)
}

// suggest formats autocomplete entries as "name – id". Lookup failures
// only mean no suggestions.
func (w *Wizard) suggest(ctx context.Context) func(string) []string {
	return func(input string) []string {
		if strings.TrimSpace(input) == "" {
			return nil
		}
		stations, err := w.dir.SearchStations(ctx, input, suggestionLimit)
		if err != nil {
			w.logger.Warn("Station suggestions failed", "input", input, "error", err)
			return nil
		}
		out := make([]string, 0, len(stations))
		for _, s := range stations {
			out = append(out, s.Name+suggestionSeparator+s.ID)
		}
		return out
	}
}

// stationAnswer extracts the id from a picked suggestion and passes
// anything else through as a query.
func stationAnswer(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.LastIndex(raw, suggestionSeparator); i >= 0 {
		if id := strings.TrimSpace(raw[i+len(suggestionSeparator):]); validate.IsStationID(id) {
			return id
		}
	}
	return raw
}
