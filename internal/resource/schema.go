// Package resource implements the generic CRUD manager behind every admin
// dashboard page. One Manager, parameterized by a Schema, replaces what would
// otherwise be six near-identical per-resource implementations; the schemas
// themselves live in schemas.go as data.
package resource

import "slices"

// FieldKind tells the form layer how to render and normalize a field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldTextArea
	FieldDate
	FieldPassword
	FieldCategory
)

// Field describes one editable scalar field of a resource. Name doubles as
// the JSON payload key and the HTML input name.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
}

// InputType maps the field kind onto an HTML input type. Textarea and
// category fields render as their own elements and never reach this.
func (f Field) InputType() string {
	switch f.Kind {
	case FieldDate:
		return "date"
	case FieldPassword:
		return "password"
	default:
		return "text"
	}
}

// IsTextArea reports whether the field renders as a textarea.
func (f Field) IsTextArea() bool { return f.Kind == FieldTextArea }

// IsCategory reports whether the field renders as a category select.
func (f Field) IsCategory() bool { return f.Kind == FieldCategory }

// ImageArity is how many hosted images a resource carries.
type ImageArity int

const (
	NoImage ImageArity = iota
	SingleImage
	MultiImage
)

// CategoryOther is the sentinel category that routes to the free-text
// custom-category input.
const CategoryOther = "Other"

// CustomCategoryKey is the draft key holding the free-text category.
const CustomCategoryKey = "customCategory"

// Schema describes one manageable resource: where it lives on the backend,
// which fields it has and how images attach to it.
type Schema struct {
	// Name is the URL segment and registry key, e.g. "team-members".
	Name string
	// Title is the plural display name.
	Title string
	// Singular names one record in confirmation prompts.
	Singular string
	// Path is the backend collection path.
	Path string
	// CreatePath overrides the collection path for creation when set
	// (admins are created through admins/register).
	CreatePath string
	// Fields lists the editable scalar fields.
	Fields []Field
	// Image is the image arity; ImageField is the payload key images use.
	Image      ImageArity
	ImageField string
	// Categories is the recognized set for the schema's category field,
	// ending with CategoryOther.
	Categories []string
	// Updatable is false for resources that only support create and delete.
	Updatable bool
}

func (s Schema) createPath() string {
	if s.CreatePath != "" {
		return s.CreatePath
	}
	return s.Path
}

// HasImage reports whether records of this schema carry hosted images.
func (s Schema) HasImage() bool { return s.Image != NoImage }

// MultipleImages reports whether the schema carries a list of images.
func (s Schema) MultipleImages() bool { return s.Image == MultiImage }

// CategoryField returns the schema's category field, if it has one.
func (s Schema) CategoryField() (Field, bool) {
	for _, f := range s.Fields {
		if f.Kind == FieldCategory {
			return f, true
		}
	}
	return Field{}, false
}

// RecognizedCategory reports whether value belongs to the schema's fixed
// category set.
func (s Schema) RecognizedCategory(value string) bool {
	return slices.Contains(s.Categories, value)
}
