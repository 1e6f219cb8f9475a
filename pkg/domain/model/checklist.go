package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// FallbackCategoryName is the bucket used when items arrive without a category.
const FallbackCategoryName = "Uncategorized"

// Item is a single checklist entry with completion state
type Item struct {
	ID        types.ItemID `json:"id" firestore:"id"`
	Text      string       `json:"text" firestore:"text"`
	Completed bool         `json:"completed" firestore:"completed"`
}

// Category is a named group of checklist items. A category with zero items
// must never exist at rest; every operation that can empty one drops it.
type Category struct {
	Name  string `json:"name" firestore:"name"`
	Items []Item `json:"items" firestore:"items"`
}

// Checklist is the full ordered collection of categories and the unit of
// persistence. Category order is significant for display only.
type Checklist struct {
	Categories []Category `json:"categories" firestore:"categories"`
}

// NormalizeKey lowercases and trims a category name or item text for
// case/whitespace-insensitive matching. Stored values keep their original form.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Clone returns a deep copy of the item
func (i Item) Clone() Item {
	return Item{
		ID:        i.ID,
		Text:      i.Text,
		Completed: i.Completed,
	}
}

// Clone returns a deep copy of the category
func (c Category) Clone() Category {
	items := make([]Item, len(c.Items))
	for i, item := range c.Items {
		items[i] = item.Clone()
	}
	return Category{
		Name:  c.Name,
		Items: items,
	}
}

// Clone returns a deep copy of the checklist. Mutation operations always work
// on a clone so callers can retain the previous value for rollback.
func (cl Checklist) Clone() Checklist {
	if len(cl.Categories) == 0 {
		return Checklist{}
	}
	categories := make([]Category, len(cl.Categories))
	for i, cat := range cl.Categories {
		categories[i] = cat.Clone()
	}
	return Checklist{Categories: categories}
}

// IsEmpty reports whether the checklist has no categories
func (cl Checklist) IsEmpty() bool {
	return len(cl.Categories) == 0
}

// TotalItems returns the number of items across all categories
func (cl Checklist) TotalItems() int {
	n := 0
	for _, cat := range cl.Categories {
		n += len(cat.Items)
	}
	return n
}

// FindItem scans categories in order and returns the first item matching the
// given ID together with its owning category. IDs are unique so at most one
// match exists; if duplicates ever occur the first occurrence wins.
func (cl Checklist) FindItem(id types.ItemID) (Item, Category, bool) {
	for _, cat := range cl.Categories {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, cat, true
			}
		}
	}
	return Item{}, Category{}, false
}

// findCategory returns the index of the category whose normalized name matches,
// or -1 if none does.
func (cl Checklist) findCategory(name string) int {
	key := NormalizeKey(name)
	for i, cat := range cl.Categories {
		if NormalizeKey(cat.Name) == key {
			return i
		}
	}
	return -1
}

// Validate checks the at-rest invariants: every category holds at least one
// item and every item ID is unique across the whole checklist. Intended for
// tests and assertions, not inline enforcement.
func (cl Checklist) Validate() error {
	seen := make(map[types.ItemID]string, cl.TotalItems())
	for _, cat := range cl.Categories {
		if len(cat.Items) == 0 {
			return goerr.New("category has no items", goerr.V("category", cat.Name))
		}
		for _, item := range cat.Items {
			if err := item.ID.Validate(); err != nil {
				return goerr.Wrap(err, "invalid item ID", goerr.V("category", cat.Name))
			}
			if prev, ok := seen[item.ID]; ok {
				return goerr.New("duplicate item ID",
					goerr.V("id", item.ID),
					goerr.V("category", cat.Name),
					goerr.V("firstSeenIn", prev))
			}
			seen[item.ID] = cat.Name
		}
	}
	return nil
}
