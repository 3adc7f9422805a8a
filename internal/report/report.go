// Package report writes a snapshot of the packing list for humans or tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/travelcheck/internal/model"
	"github.com/idilsaglam/travelcheck/internal/session"
	"github.com/idilsaglam/travelcheck/internal/ui"
	"github.com/idilsaglam/travelcheck/internal/view"
)

// Format selects the encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
}

// Document is the machine-readable shape. Summary is nil for an empty list.
type Document struct {
	Sort    view.SortKey `json:"sort" yaml:"sort"`
	Items   []model.Item `json:"items" yaml:"items"`
	Summary *view.Stats  `json:"summary" yaml:"summary"`
}

// NewDocument converts a snapshot.
func NewDocument(snap session.Snapshot) Document {
	d := Document{Sort: snap.Sort, Items: snap.Items}
	if d.Items == nil {
		d.Items = []model.Item{}
	}
	if !snap.Empty {
		st := snap.Stats
		d.Summary = &st
	}
	return d
}

// Write encodes snap to w.
func Write(w io.Writer, f Format, snap session.Snapshot, t ui.Theme) error {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(NewDocument(snap), "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(snap)); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return nil
	case FormatText, "":
		if _, err := fmt.Fprintln(w, t.Panel(TextLines(snap, t))); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// TextLines lays out the text report body.
func TextLines(snap session.Snapshot, t ui.Theme) []string {
	lines := []string{t.Header(snap.Stats)}
	if !snap.Empty {
		lines = append(lines, t.Muted.Render(ui.ProgressBar(snap.Stats, 28)))
	}
	lines = append(lines, "")
	if len(snap.Items) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, it := range snap.Items {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.ItemLine(it)))
	}
	lines = append(lines, "", t.Muted.Render(snap.Sort.Label()))
	lines = append(lines, ui.StatsMessage(snap.Stats, !snap.Empty))
	return lines
}
