package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newTestDocumentStateManager(t *testing.T) *DocumentStateManager {
	t.Helper()
	return &DocumentStateManager{
		filePath: filepath.Join(t.TempDir(), "open_documents.json"),
	}
}

func TestDocumentState_Empty(t *testing.T) {
	m := newTestDocumentStateManager(t)

	state, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Fatalf("expected nil state for missing file, got %+v", state)
	}
}

func TestDocumentState_SaveAndLoad(t *testing.T) {
	m := newTestDocumentStateManager(t)

	input := DocumentState{
		ActiveID: "doc-2",
		Documents: []Document{
			{ID: "doc-1", Name: "Untitled.txt", Content: ""},
			{ID: "doc-2", Name: "notes.txt", Content: "remember the milk", Dirty: true},
		},
	}

	if err := m.Save(input); err != nil {
		t.Fatalf("save error: %v", err)
	}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil state")
	}
	if got.ActiveID != "doc-2" {
		t.Errorf("activeDocId = %q, want %q", got.ActiveID, "doc-2")
	}
	if len(got.Documents) != 2 {
		t.Fatalf("documents count = %d, want 2", len(got.Documents))
	}
	if got.Documents[1].Content != "remember the milk" {
		t.Errorf("content = %q", got.Documents[1].Content)
	}
	if !got.Documents[1].Dirty {
		t.Error("dirty flag lost in round trip")
	}
	if got.SavedAt == 0 {
		t.Error("expected savedAt to be set")
	}
}

func TestDocumentState_OverwriteExisting(t *testing.T) {
	m := newTestDocumentStateManager(t)

	if err := m.Save(DocumentState{
		ActiveID:  "old",
		Documents: []Document{{ID: "old", Name: "old.txt"}},
	}); err != nil {
		t.Fatal(err)
	}

	if err := m.Save(DocumentState{
		ActiveID:  "new",
		Documents: []Document{{ID: "new", Name: "new.txt"}},
	}); err != nil {
		t.Fatal(err)
	}

	got, err := m.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.ActiveID != "new" {
		t.Errorf("activeDocId = %q after overwrite, want %q", got.ActiveID, "new")
	}
	if len(got.Documents) != 1 || got.Documents[0].Name != "new.txt" {
		t.Errorf("unexpected documents after overwrite: %+v", got.Documents)
	}
}

func TestDocumentState_CorruptFileRecovery(t *testing.T) {
	m := newTestDocumentStateManager(t)

	dir := filepath.Dir(m.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.filePath, []byte("{invalid json!!!"), 0600); err != nil {
		t.Fatal(err)
	}

	// Should recover gracefully
	state, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error on corrupt file: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state from corrupt file, got %+v", state)
	}
}

func TestDocumentState_Clear(t *testing.T) {
	m := newTestDocumentStateManager(t)

	if err := m.Save(DocumentState{
		ActiveID:  "x",
		Documents: []Document{{ID: "x", Name: "x.txt"}},
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("clear error: %v", err)
	}

	state, err := m.Load()
	if err != nil {
		t.Fatal(err)
	}
	if state != nil {
		t.Errorf("expected nil state after clear, got %+v", state)
	}

	// Clearing an already-missing record is fine
	if err := m.Clear(); err != nil {
		t.Errorf("second clear errored: %v", err)
	}
}

func TestDocumentState_JSONFormat(t *testing.T) {
	m := newTestDocumentStateManager(t)

	if err := m.Save(DocumentState{
		ActiveID:  "doc-1",
		Documents: []Document{{ID: "doc-1", Name: "Untitled.txt"}},
	}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(m.filePath)
	if err != nil {
		t.Fatal(err)
	}

	// Should be valid JSON with expected structure
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := raw["documents"]; !ok {
		t.Error("missing 'documents' key in JSON")
	}
	if _, ok := raw["activeDocId"]; !ok {
		t.Error("missing 'activeDocId' key in JSON")
	}
}
