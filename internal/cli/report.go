package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"gameroom/internal/config"
	"gameroom/internal/game"
)

// lookup is the outcome of one --id, --name or --index query.
type lookup struct {
	By    string     `json:"by"`
	Key   string     `json:"key"`
	Found bool       `json:"found"`
	Game  *game.Game `json:"game,omitempty"`
}

type report struct {
	Games   []game.Game `json:"games"`
	Count   int         `json:"count"`
	Lookups []lookup    `json:"lookups,omitempty"`
}

func (r *report) add(by, key string, g game.Game, found bool) {
	l := lookup{By: by, Key: key, Found: found}
	if found {
		l.Game = &g
	}
	r.Lookups = append(r.Lookups, l)
}

func (r *report) write(w io.Writer, format string) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(r)
	}
	for _, g := range r.Games {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", g.ID, g.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "count: %s\n", humanize.Comma(int64(r.Count))); err != nil {
		return err
	}
	for _, l := range r.Lookups {
		result := "not found"
		if l.Found {
			result = l.Game.String()
		}
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", l.By, l.Key, result); err != nil {
			return err
		}
	}
	return nil
}
