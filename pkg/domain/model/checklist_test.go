package model_test

import (
	"testing"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Produce", "produce"},
		{"  Milk ", "milk"},
		{"UNCATEGORIZED", "uncategorized"},
		{"", ""},
		{"  ", ""},
	}
	for _, tc := range cases {
		if got := model.NormalizeKey(tc.input); got != tc.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFindItem(t *testing.T) {
	cl := groceries()

	got, cat, ok := cl.FindItem("i2")
	if !ok {
		t.Fatal("expected to find i2")
	}
	if got.Text != "milk" || cat.Name != "Dairy" {
		t.Errorf("unexpected match: item=%+v category=%q", got, cat.Name)
	}

	if _, _, ok := cl.FindItem("nope"); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := groceries()
	clone := original.Clone()

	clone.Categories[0].Name = "Changed"
	clone.Categories[0].Items[0].Text = "changed"
	clone.Categories = append(clone.Categories, model.Category{
		Name:  "Extra",
		Items: []model.Item{item("x1", "extra")},
	})

	if original.Categories[0].Name != "Produce" {
		t.Error("clone shares category header with original")
	}
	if original.Categories[0].Items[0].Text != "apple" {
		t.Error("clone shares item slice with original")
	}
	if len(original.Categories) != 2 {
		t.Error("appending to clone grew the original")
	}
}

func TestValidate(t *testing.T) {
	if err := groceries().Validate(); err != nil {
		t.Errorf("valid checklist rejected: %v", err)
	}
	if err := (model.Checklist{}).Validate(); err != nil {
		t.Errorf("empty checklist must be valid: %v", err)
	}

	emptyCat := model.Checklist{Categories: []model.Category{{Name: "Produce"}}}
	if err := emptyCat.Validate(); err == nil {
		t.Error("empty category must be rejected")
	}

	dupID := model.Checklist{Categories: []model.Category{
		{Name: "A", Items: []model.Item{item("i1", "one")}},
		{Name: "B", Items: []model.Item{item("i1", "two")}},
	}}
	if err := dupID.Validate(); err == nil {
		t.Error("duplicate item ID must be rejected")
	}

	blankID := model.Checklist{Categories: []model.Category{
		{Name: "A", Items: []model.Item{{Text: "one"}}},
	}}
	if err := blankID.Validate(); err == nil {
		t.Error("blank item ID must be rejected")
	}
}

func TestIsEmptyAndTotalItems(t *testing.T) {
	if !(model.Checklist{}).IsEmpty() {
		t.Error("zero-value checklist must be empty")
	}
	cl := groceries()
	if cl.IsEmpty() {
		t.Error("populated checklist reported empty")
	}
	if got := cl.TotalItems(); got != 2 {
		t.Errorf("TotalItems = %d, want 2", got)
	}
}
