package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/apexcarclub/clubsite/internal/backend"
)

// State is the manager's lifecycle state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// unexpectedFormat is shown when a list response is not a JSON array.
const unexpectedFormat = "Unexpected data format"

// Uploader sends one file to the image host and returns its hosted URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// File is one selected file heading for the image host.
type File struct {
	Name   string
	Reader io.Reader
}

// Manager drives one resource collection: it fetches the server snapshot,
// submits mutations, and re-fetches after every successful mutation so the
// displayed collection always reflects at least the caller's own write.
// It never patches the collection client-side.
type Manager struct {
	schema   Schema
	client   *backend.Client
	uploader Uploader

	state     State
	records   []Record
	draft     *Draft
	uploading bool
	errMsg    string
}

// NewManager creates a manager in the Loading state with an empty draft.
func NewManager(schema Schema, client *backend.Client, up Uploader) *Manager {
	return &Manager{
		schema:   schema,
		client:   client,
		uploader: up,
		state:    StateLoading,
		draft:    NewDraft(schema),
	}
}

// Schema returns the manager's resource schema.
func (m *Manager) Schema() Schema { return m.schema }

// State returns the manager's lifecycle state.
func (m *Manager) State() State { return m.state }

// Records returns the last successfully fetched server snapshot.
func (m *Manager) Records() []Record { return m.records }

// Draft returns the active form draft.
func (m *Manager) Draft() *Draft { return m.draft }

// Editing reports whether the draft is bound to an existing record.
func (m *Manager) Editing() bool { return m.draft.Mode == DraftEdit }

// Uploading reports whether an image upload is in flight; submission is
// blocked while it is.
func (m *Manager) Uploading() bool { return m.uploading }

// Err returns the current user-visible error message, if any.
func (m *Manager) Err() string { return m.errMsg }

// List fetches the full collection. A response that is not a JSON array moves
// the manager to Failed with an empty collection — it never partially
// populates.
func (m *Manager) List(ctx context.Context) error {
	raw, err := m.client.Get(ctx, m.schema.Path)
	if err != nil {
		m.state = StateFailed
		m.setError(err)
		return err
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		m.state = StateFailed
		m.records = nil
		m.errMsg = unexpectedFormat
		return fmt.Errorf("%s: %w", unexpectedFormat, err)
	}

	m.records = records
	m.state = StateReady
	m.errMsg = ""
	return nil
}

// EnterEdit copies one fetched record into the draft for editing.
func (m *Manager) EnterEdit(id string) error {
	for _, rec := range m.records {
		if rec.ID() == id {
			m.draft = draftFromRecord(m.schema, rec)
			return nil
		}
	}
	return fmt.Errorf("no %s with id %s", m.schema.Singular, id)
}

// CancelEdit discards the draft unconditionally.
func (m *Manager) CancelEdit() {
	m.draft = NewDraft(m.schema)
}

// SetDraft replaces the active draft, typically with one rebuilt from a form
// submission.
func (m *Manager) SetDraft(d *Draft) {
	if d != nil {
		m.draft = d
	}
}

// AttachImages uploads the given files in parallel and attaches the resulting
// URLs to the draft: single-image schemas take the last URL as a replacement,
// multi-image schemas append. If any upload fails the draft's image list is
// left exactly as it was — no partial URLs are committed.
func (m *Manager) AttachImages(ctx context.Context, files []File) error {
	if len(files) == 0 {
		return nil
	}

	m.uploading = true
	defer func() { m.uploading = false }()

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			u, err := m.uploader.Upload(gctx, f.Name, f.Reader)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.errMsg = err.Error()
		return err
	}

	switch m.schema.Image {
	case SingleImage:
		m.draft.Images = urls[len(urls)-1:]
	case MultiImage:
		m.draft.Images = append(m.draft.Images, urls...)
	}
	return nil
}

// Submit sends the draft to the backend: POST for a create draft, PUT by id
// for an edit draft. On success the draft is reset and the collection
// re-fetched; on failure the draft is preserved so the user can retry.
func (m *Manager) Submit(ctx context.Context) error {
	if m.uploading {
		m.errMsg = "Image upload in progress"
		return errors.New("image upload in progress")
	}

	payload := m.payload()

	var err error
	if m.draft.Mode == DraftEdit {
		if !m.schema.Updatable {
			return fmt.Errorf("%s records cannot be updated", m.schema.Singular)
		}
		_, err = m.client.Put(ctx, m.schema.Path+"/"+m.draft.ID, payload)
	} else {
		_, err = m.client.Post(ctx, m.schema.createPath(), payload)
	}
	if err != nil {
		m.setError(err)
		return err
	}

	m.draft = NewDraft(m.schema)
	return m.List(ctx)
}

// Delete removes one record by id, but only when the caller confirmed the
// prompt; a declined confirmation issues no request at all. A confirmed
// delete is followed by a re-fetch.
func (m *Manager) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	if err := m.client.Delete(ctx, m.schema.Path+"/"+id); err != nil {
		m.setError(err)
		return err
	}
	return m.List(ctx)
}

// payload builds the mutation body from the draft. A category of Other is
// replaced by the custom-category text, and the image field carries the
// draft's hosted URL(s).
func (m *Manager) payload() map[string]any {
	p := make(map[string]any, len(m.schema.Fields)+1)
	for _, f := range m.schema.Fields {
		value := m.draft.Values[f.Name]
		if f.Kind == FieldCategory {
			if custom := m.draft.Values[CustomCategoryKey]; custom != "" && (value == "" || value == CategoryOther) {
				value = custom
			}
		}
		p[f.Name] = value
	}

	switch m.schema.Image {
	case SingleImage:
		if len(m.draft.Images) > 0 {
			p[m.schema.ImageField] = m.draft.Images[0]
		} else {
			p[m.schema.ImageField] = nil
		}
	case MultiImage:
		images := m.draft.Images
		if images == nil {
			images = []string{}
		}
		p[m.schema.ImageField] = images
	}

	return p
}

// setError records a user-visible message for everything except session
// expiry, which is a navigation concern rather than inline form state.
func (m *Manager) setError(err error) {
	if errors.Is(err, backend.ErrSessionExpired) {
		return
	}
	m.errMsg = backend.ErrorMessage(err)
}
