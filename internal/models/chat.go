package models

import "time"

// ChatEntry is one recorded question/answer exchange. Immutable once created;
// the session history keeps entries newest-first.
type ChatEntry struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	ChartKind ChartKind `json:"chartKind,omitempty"`
	Image     []byte    `json:"image,omitempty"` // PNG bytes, base64 over JSON
	Table     []byte    `json:"table,omitempty"` // CSV payload for the table kind
	CreatedAt time.Time `json:"createdAt"`
}
