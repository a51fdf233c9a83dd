package models

import "time"

// SessionInfo is a read-only snapshot of an analysis session.
type SessionInfo struct {
	ID         string    `json:"id"`
	FileCount  int       `json:"fileCount"`
	WordCount  int       `json:"wordCount"`
	HistoryLen int       `json:"historyLen"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}
