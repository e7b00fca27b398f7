package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vbb-change-positions/pkg/positions/models"
)

type WebhookMessage struct {
	Content string  `json:"content"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

type Embed struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       int       `json:"color"`
	Timestamp   time.Time `json:"timestamp"`
	Fields      []Field   `json:"fields,omitempty"`
}

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) SendMessage(ctx context.Context, msg WebhookMessage) error {
	if c.webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook request failed with status: %d", resp.StatusCode)
	}

	return nil
}

// SendEntries posts one embed per appended entry.
func (c *Client) SendEntries(ctx context.Context, runID string, entries []models.Entry) error {
	msg := WebhookMessage{
		Content: fmt.Sprintf("%d new change position(s), run %s", len(entries), runID),
	}
	for _, e := range entries {
		msg.Embeds = append(msg.Embeds, entryEmbed(e))
	}
	return c.SendMessage(ctx, msg)
}

func entryEmbed(e models.Entry) Embed {
	color := 0x0A4C99 // S-Bahn blue
	if e.SamePlatform {
		color = 0x66AA22
	}

	return Embed{
		Title:       e.StationName,
		Description: fmt.Sprintf("%s → %s", e.FromStationName, e.ToStationName),
		Color:       color,
		Timestamp:   time.Now(),
		Fields: []Field{
			{Name: "From", Value: sideSummary(e.FromLines, e.FromTrack, e.FromPosition), Inline: true},
			{Name: "To", Value: sideSummary(e.ToLines, e.ToTrack, e.ToPosition), Inline: true},
		},
	}
}

func sideSummary(lines []string, track string, position float64) string {
	s := fmt.Sprintf("%s @ %.2f", strings.Join(lines, ", "), position)
	if track != "" {
		s += fmt.Sprintf(" (track %s)", track)
	}
	return s
}
