package domain

import "time"

// HistoryEntry is one resolved command line.
type HistoryEntry struct {
	ID        string
	Line      string
	Command   string
	Matched   bool
	Mask      uint8
	CreatedAt time.Time
}
