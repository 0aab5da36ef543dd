// Package entry defines the health log entry model as returned by the server.
package entry

import (
	"encoding/json"
	"sort"
	"time"
)

// Type classifies what the server's parser made of the entry text.
type Type string

const (
	TypeWeight  Type = "weight"
	TypeSteps   Type = "steps"
	TypeFood    Type = "food"
	TypeUnknown Type = "unknown"
	TypeError   Type = "error"
)

// Entry is one user-submitted health log record. The id is server-assigned
// and stable; all structured fields come back from the server's parser and
// are never derived client-side.
type Entry struct {
	ID        int64           `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Text      string          `json:"entry_text"`
	Type      Type            `json:"entry_type"`
	Value     *float64        `json:"value,omitempty"`
	Unit      *string         `json:"unit,omitempty"`
	Parsed    json.RawMessage `json:"parsed_data,omitempty"`
}

// SortNewestFirst orders entries by timestamp descending. Display order is
// always newest first; server order is not trusted.
func SortNewestFirst(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
