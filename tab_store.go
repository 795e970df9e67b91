package main

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// defaultDocument is the placeholder substituted when no usable persisted
// state exists. Its fixed id matches the record written by a fresh install.
func defaultDocument() Document {
	return Document{ID: "1", Name: "Untitled.txt"}
}

// TabStore owns the ordered set of open documents and the active selection.
// All create/open/edit/save/close operations go through it, and every
// mutation re-persists the full document set before returning. Presentation
// code only ever sees copies; it must route changes back through these
// methods rather than mutating documents directly.
type TabStore struct {
	mu           sync.Mutex
	docs         []Document
	activeID     string
	pendingClose string // id of a document awaiting close confirmation, "" if none
	state        *DocumentStateManager
}

// NewTabStore creates a TabStore backed by the given persistence manager.
func NewTabStore(state *DocumentStateManager) *TabStore {
	return &TabStore{state: state}
}

// Restore loads the previously persisted document set. Missing, empty, or
// corrupt state degrades to a single default placeholder document; this
// never fails outward.
func (ts *TabStore) Restore() []Document {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	state, err := ts.state.Load()
	if err != nil || state == nil || len(state.Documents) == 0 {
		ts.docs = []Document{defaultDocument()}
		ts.activeID = ts.docs[0].ID
		return ts.snapshot()
	}

	ts.docs = append([]Document(nil), state.Documents...)
	ts.activeID = state.ActiveID
	if ts.indexOf(ts.activeID) < 0 {
		ts.activeID = ts.docs[0].ID
	}
	return ts.snapshot()
}

// CreateDocument appends a fresh untitled document and makes it active.
// Returns the new document's id.
func (ts *TabStore) CreateDocument() (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	doc := Document{
		ID:   uuid.New().String(),
		Name: fmt.Sprintf("Untitled-%d.txt", len(ts.docs)+1),
	}
	ts.docs = append(ts.docs, doc)
	ts.activeID = doc.ID
	return doc.ID, ts.persist()
}

// OpenDocument appends a document with the given name and content, marked
// clean, and makes it active. The (name, content) pair comes from the
// frontend's file picker; this store never touches the filesystem for it.
func (ts *TabStore) OpenDocument(name, content string) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	doc := Document{
		ID:      uuid.New().String(),
		Name:    name,
		Content: content,
	}
	ts.docs = append(ts.docs, doc)
	ts.activeID = doc.ID
	return doc.ID, ts.persist()
}

// ActivateDocument makes the document with the given id the active one,
// for tab-strip selection. Unknown ids are ignored so the active id always
// references a present document.
func (ts *TabStore) ActivateDocument(id string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.indexOf(id) < 0 || ts.activeID == id {
		return nil
	}
	ts.activeID = id
	return ts.persist()
}

// EditDocument replaces the content of the document with the given id and
// marks it dirty. A nil content or an unknown id is a silent no-op; nil
// keeps "not provided" distinct from "set to empty" across the JS boundary.
func (ts *TabStore) EditDocument(id string, content *string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 || content == nil {
		return nil
	}
	ts.docs[i].Content = *content
	ts.docs[i].Dirty = true
	return ts.persist()
}

// CloseDocument requests removal of the document with the given id.
// A clean document is removed immediately. A dirty document is left in
// place and a pending close request is recorded; the caller must resolve
// it with ConfirmClose or CancelClose. An unknown id is a no-op.
func (ts *TabStore) CloseDocument(id string) (CloseResult, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return CloseResult{ActiveID: ts.activeID}, nil
	}

	if ts.docs[i].Dirty {
		ts.pendingClose = id
		return CloseResult{ConfirmationRequired: true, ActiveID: ts.activeID}, nil
	}

	ts.removeAt(i)
	return CloseResult{Closed: true, ActiveID: ts.activeID}, ts.persist()
}

// ConfirmClose force-removes the document with the given id regardless of
// dirty state, resolving any pending close request. A stale id (already
// closed or never requested) is a no-op.
func (ts *TabStore) ConfirmClose(id string) (CloseResult, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.pendingClose == id {
		ts.pendingClose = ""
	}

	i := ts.indexOf(id)
	if i < 0 {
		return CloseResult{ActiveID: ts.activeID}, nil
	}

	ts.removeAt(i)
	return CloseResult{Closed: true, ActiveID: ts.activeID}, ts.persist()
}

// CancelClose abandons a pending close request. The document stays open
// and stays dirty.
func (ts *TabStore) CancelClose(id string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.pendingClose == id {
		ts.pendingClose = ""
	}
}

// MarkSaved clears the dirty flag for the given document without altering
// content. Delivering the bytes (the export/download itself) is the
// frontend's job; this is the after-the-fact notification.
func (ts *TabStore) MarkSaved(id string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return nil
	}
	ts.docs[i].Dirty = false
	return ts.persist()
}

// ClearAll discards the durable record and resets to the single default
// placeholder document.
func (ts *TabStore) ClearAll() ([]Document, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if err := ts.state.Clear(); err != nil {
		return nil, err
	}
	ts.docs = []Document{defaultDocument()}
	ts.activeID = ts.docs[0].ID
	ts.pendingClose = ""
	return ts.snapshot(), ts.persist()
}

// Documents returns a copy of the open document set in tab order.
func (ts *TabStore) Documents() []Document {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.snapshot()
}

// ActiveID returns the id of the currently active document.
func (ts *TabStore) ActiveID() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.activeID
}

// ActiveDocument returns a copy of the currently active document.
func (ts *TabStore) ActiveDocument() Document {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	i := ts.indexOf(ts.activeID)
	if i < 0 {
		return Document{}
	}
	return ts.docs[i]
}

// indexOf returns the position of the document with the given id, or -1.
// Callers must hold ts.mu.
func (ts *TabStore) indexOf(id string) int {
	for i, d := range ts.docs {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// removeAt deletes the document at index i and repairs the active
// selection: the first remaining document becomes active if the active one
// was removed, and a fresh placeholder is substituted when the set would
// otherwise become empty. Callers must hold ts.mu.
func (ts *TabStore) removeAt(i int) {
	removed := ts.docs[i]
	ts.docs = append(ts.docs[:i], ts.docs[i+1:]...)

	if len(ts.docs) == 0 {
		// Never leave zero documents. A new id keeps ids from being reused.
		doc := Document{ID: uuid.New().String(), Name: "Untitled.txt"}
		ts.docs = []Document{doc}
		ts.activeID = doc.ID
		return
	}

	if removed.ID == ts.activeID {
		ts.activeID = ts.docs[0].ID
	}
}

// persist writes the full document set and active id to the durable store.
// Callers must hold ts.mu.
func (ts *TabStore) persist() error {
	return ts.state.Save(DocumentState{
		ActiveID:  ts.activeID,
		Documents: append([]Document(nil), ts.docs...),
	})
}

// snapshot copies the document set. Callers must hold ts.mu.
func (ts *TabStore) snapshot() []Document {
	return append([]Document(nil), ts.docs...)
}
