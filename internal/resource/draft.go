package resource

import (
	"net/url"

	"github.com/apexcarclub/clubsite/internal/dateutil"
)

// DraftMode distinguishes a brand-new record from an edit of an existing one.
type DraftMode int

const (
	DraftCreate DraftMode = iota
	DraftEdit
)

// Draft is the transient editable mirror of one record. Exactly one draft is
// active per manager; it is discarded on successful submit or cancel and kept
// as-is when a submission fails, so nothing has to be retyped.
type Draft struct {
	Mode DraftMode
	// ID is set only in edit mode and names the record being replaced.
	ID string
	// Values holds the scalar fields by field name, plus the custom
	// category text under CustomCategoryKey for schemas with categories.
	Values map[string]string
	// Images holds fully-resolved hosted URLs, never local file handles.
	Images []string
}

// NewDraft returns the empty draft for a schema: create mode, every field
// blank, no images.
func NewDraft(s Schema) *Draft {
	values := make(map[string]string, len(s.Fields)+1)
	for _, f := range s.Fields {
		values[f.Name] = ""
	}
	if _, ok := s.CategoryField(); ok {
		values[CustomCategoryKey] = ""
	}
	return &Draft{Mode: DraftCreate, Values: values}
}

// draftFromRecord populates a draft wholesale from an existing record for
// editing. Dates are renormalized to the input-editable 2006-01-02 form,
// passwords are never echoed back, and a category outside the recognized set
// is routed to the custom-category input.
func draftFromRecord(s Schema, rec Record) *Draft {
	d := NewDraft(s)
	d.Mode = DraftEdit
	d.ID = rec.ID()

	for _, f := range s.Fields {
		value := rec.String(f.Name)
		switch f.Kind {
		case FieldDate:
			value = dateutil.FormatForInput(value)
		case FieldPassword:
			value = ""
		case FieldCategory:
			if value != "" && !s.RecognizedCategory(value) {
				d.Values[CustomCategoryKey] = value
				value = CategoryOther
			}
		}
		d.Values[f.Name] = value
	}

	switch s.Image {
	case SingleImage:
		if u := rec.String(s.ImageField); u != "" {
			d.Images = []string{u}
		}
	case MultiImage:
		d.Images = rec.Strings(s.ImageField)
	}

	return d
}

// DraftFromForm rebuilds a draft from submitted form values. Existing image
// URLs ride along in hidden inputs named after the schema's image field, which
// is how a failed submission keeps its images. A non-empty id means edit mode.
func DraftFromForm(s Schema, id string, form url.Values) *Draft {
	d := NewDraft(s)
	if id != "" {
		d.Mode = DraftEdit
		d.ID = id
	}

	for _, f := range s.Fields {
		d.Values[f.Name] = form.Get(f.Name)
	}
	if _, ok := s.CategoryField(); ok {
		d.Values[CustomCategoryKey] = form.Get(CustomCategoryKey)
	}

	switch s.Image {
	case SingleImage:
		if u := form.Get(s.ImageField); u != "" {
			d.Images = []string{u}
		}
	case MultiImage:
		for _, u := range form[s.ImageField] {
			if u != "" {
				d.Images = append(d.Images, u)
			}
		}
	}

	return d
}

// Image returns the draft's single image URL, or "" when none is attached.
func (d *Draft) Image() string {
	if len(d.Images) == 0 {
		return ""
	}
	return d.Images[0]
}
