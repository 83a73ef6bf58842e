package entities

import "time"

// ContentNode is one node in a lifelog entry's content tree. Nodes carry
// optional text and an optional speaker label; children preserve the order
// they were spoken/written in.
type ContentNode struct {
	Type      string        `json:"type,omitempty"` // heading1, heading2, blockquote, paragraph
	Content   string        `json:"content,omitempty"`
	Speaker   string        `json:"speakerName,omitempty"`
	StartTime *time.Time    `json:"startTime,omitempty"`
	EndTime   *time.Time    `json:"endTime,omitempty"`
	Children  []ContentNode `json:"children,omitempty"`
}

// LogEntry is one recorded activity segment fetched from the upstream
// lifelog API. Entries are immutable once fetched.
type LogEntry struct {
	ID        string        `json:"id"`
	Title     string        `json:"title,omitempty"`
	Markdown  string        `json:"markdown,omitempty"`
	StartTime *time.Time    `json:"startTime,omitempty"`
	EndTime   *time.Time    `json:"endTime,omitempty"`
	IsStarred bool          `json:"isStarred,omitempty"`
	Contents  []ContentNode `json:"contents,omitempty"`
}

// DurationMinutes returns the entry duration in minutes, or 0 when either
// timestamp is missing.
func (e LogEntry) DurationMinutes() float64 {
	if e.StartTime == nil || e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(*e.StartTime).Minutes()
}
