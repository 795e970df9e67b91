package main

// Document represents one open tab: an editable text buffer with identity,
// display name, content, and unsaved-changes status.
type Document struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Dirty   bool   `json:"dirty,omitempty"`
}

// DocumentState represents the persisted document set for the window.
type DocumentState struct {
	ActiveID  string     `json:"activeDocId"`
	Documents []Document `json:"documents"`
	SavedAt   int64      `json:"savedAt"`
}

// CloseResult reports the outcome of a close request.
// A dirty document is never removed by CloseDocument; the caller gets
// ConfirmationRequired and must follow up with ConfirmClose or CancelClose.
type CloseResult struct {
	Closed               bool   `json:"closed"`
	ConfirmationRequired bool   `json:"confirmationRequired"`
	ActiveID             string `json:"activeDocId"`
}
