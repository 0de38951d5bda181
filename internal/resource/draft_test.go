package resource

import (
	"net/url"
	"testing"
)

func TestNewDraftIsEmpty(t *testing.T) {
	s, _ := SchemaByName("news")
	d := NewDraft(s)

	if d.Mode != DraftCreate || d.ID != "" {
		t.Errorf("unexpected draft %+v", d)
	}
	for _, f := range s.Fields {
		if d.Values[f.Name] != "" {
			t.Errorf("field %s not empty", f.Name)
		}
	}
	if _, ok := d.Values[CustomCategoryKey]; !ok {
		t.Error("news draft must carry a custom-category slot")
	}
	if len(d.Images) != 0 {
		t.Errorf("images = %v", d.Images)
	}
}

func TestDraftFromFormCreate(t *testing.T) {
	s, _ := SchemaByName("events")
	form := url.Values{
		"title":       {"Autumn Run"},
		"date":        {"2024-10-12"},
		"description": {"scenic drive"},
		"image":       {"https://img.example.com/run.jpg"},
	}

	d := DraftFromForm(s, "", form)
	if d.Mode != DraftCreate {
		t.Errorf("mode = %v, want create", d.Mode)
	}
	if d.Values["title"] != "Autumn Run" || d.Values["date"] != "2024-10-12" {
		t.Errorf("values = %v", d.Values)
	}
	if d.Image() != "https://img.example.com/run.jpg" {
		t.Errorf("image = %q", d.Image())
	}
}

func TestDraftFromFormEdit(t *testing.T) {
	s, _ := SchemaByName("galleries")
	form := url.Values{
		"event":       {"Hillclimb"},
		"description": {"photos"},
		"images":      {"https://a.jpg", "https://b.jpg", ""},
	}

	d := DraftFromForm(s, "14", form)
	if d.Mode != DraftEdit || d.ID != "14" {
		t.Errorf("expected edit draft bound to 14, got %+v", d)
	}
	if len(d.Images) != 2 {
		t.Errorf("blank image values must be dropped, got %v", d.Images)
	}
}

func TestDraftFromRecordPasswordNeverEchoed(t *testing.T) {
	s, _ := SchemaByName("admins")
	rec := Record{"id": "1", "username": "root", "password": "hash"}

	d := draftFromRecord(s, rec)
	if d.Values["password"] != "" {
		t.Error("password must not be copied into the draft")
	}
	if d.Values["username"] != "root" {
		t.Errorf("username = %q", d.Values["username"])
	}
}

func TestDraftFromRecordRecognizedCategory(t *testing.T) {
	s, _ := SchemaByName("news")
	rec := Record{"id": "1", "title": "t", "date": "2024-01-01", "category": "Club News"}

	d := draftFromRecord(s, rec)
	if d.Values["category"] != "Club News" {
		t.Errorf("category = %q", d.Values["category"])
	}
	if d.Values[CustomCategoryKey] != "" {
		t.Errorf("customCategory should stay empty, got %q", d.Values[CustomCategoryKey])
	}
}
