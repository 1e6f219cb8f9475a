package model

import (
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// The mutation engine. Every operation takes the current checklist as an
// immutable input and returns a fresh value; shared structure is never
// modified in place. Lookup misses are silent no-ops that still return an
// unchanged copy, so callers can always treat the result as the new current
// value and keep the previous one for rollback.

// AddItems appends one new item per text to the fallback "Uncategorized"
// bucket, creating it at the end of the checklist if it does not exist yet.
// Matching against an existing bucket is case-insensitive but a newly created
// bucket uses the canonical display name. Unlike Merge, this path performs no
// duplicate suppression: adding "milk" twice yields two items.
func AddItems(cl Checklist, texts []string) Checklist {
	next := cl.Clone()
	if len(texts) == 0 {
		return next
	}

	idx := next.findCategory(FallbackCategoryName)
	if idx < 0 {
		next.Categories = append(next.Categories, Category{Name: FallbackCategoryName})
		idx = len(next.Categories) - 1
	}

	for _, text := range texts {
		next.Categories[idx].Items = append(next.Categories[idx].Items, Item{
			ID:        types.NewItemID(),
			Text:      text,
			Completed: false,
		})
	}
	return next
}

// RemoveItems deletes every item whose text matches one of the given phrases.
// Matching is exact on the lowercased, trimmed text: phrase "egg" removes
// "Egg " but not "eggplant". Categories emptied by the removal are dropped.
func RemoveItems(cl Checklist, phrases []string) Checklist {
	next := cl.Clone()
	if len(phrases) == 0 {
		return next
	}

	targets := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		targets[NormalizeKey(p)] = true
	}

	kept := next.Categories[:0]
	for _, cat := range next.Categories {
		items := cat.Items[:0]
		for _, item := range cat.Items {
			if !targets[NormalizeKey(item.Text)] {
				items = append(items, item)
			}
		}
		cat.Items = items
		if len(cat.Items) > 0 {
			kept = append(kept, cat)
		}
	}
	next.Categories = kept
	return next
}

// ToggleItem flips the completion state of the addressed item. No-op if the
// category or item is not found. Toggling never empties a category.
func ToggleItem(cl Checklist, categoryName string, id types.ItemID) Checklist {
	next := cl.Clone()
	ci := next.findCategory(categoryName)
	if ci < 0 {
		return next
	}
	for ii, item := range next.Categories[ci].Items {
		if item.ID == id {
			next.Categories[ci].Items[ii].Completed = !item.Completed
			break
		}
	}
	return next
}

// EditItem replaces the addressed item's text verbatim. Trimming and
// no-op-on-unchanged-text are the caller's concern. No-op if not found.
func EditItem(cl Checklist, categoryName string, id types.ItemID, newText string) Checklist {
	next := cl.Clone()
	ci := next.findCategory(categoryName)
	if ci < 0 {
		return next
	}
	for ii, item := range next.Categories[ci].Items {
		if item.ID == id {
			next.Categories[ci].Items[ii].Text = newText
			break
		}
	}
	return next
}

// MoveItem relocates an item from the source category to the end of the
// destination category, preserving the relative order of the remaining source
// items. No-op when source and destination are the same or when the source,
// destination, or item cannot be found. If the move empties the source
// category it is dropped; this is the one operation that destroys a category
// as a side effect of a non-deletion intent.
func MoveItem(cl Checklist, id types.ItemID, sourceName, destName string) Checklist {
	next := cl.Clone()
	if NormalizeKey(sourceName) == NormalizeKey(destName) {
		return next
	}

	si := next.findCategory(sourceName)
	di := next.findCategory(destName)
	if si < 0 || di < 0 {
		return next
	}

	moved := -1
	for ii, item := range next.Categories[si].Items {
		if item.ID == id {
			moved = ii
			break
		}
	}
	if moved < 0 {
		return next
	}

	item := next.Categories[si].Items[moved]
	next.Categories[si].Items = append(
		next.Categories[si].Items[:moved],
		next.Categories[si].Items[moved+1:]...,
	)
	next.Categories[di].Items = append(next.Categories[di].Items, item)

	if len(next.Categories[si].Items) == 0 {
		next.Categories = append(next.Categories[:si], next.Categories[si+1:]...)
	}
	return next
}

// DeleteItem removes the addressed item, dropping the category if it becomes
// empty. No-op if the category or item is not found.
func DeleteItem(cl Checklist, categoryName string, id types.ItemID) Checklist {
	next := cl.Clone()
	ci := next.findCategory(categoryName)
	if ci < 0 {
		return next
	}

	items := next.Categories[ci].Items[:0]
	for _, item := range next.Categories[ci].Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	next.Categories[ci].Items = items

	if len(next.Categories[ci].Items) == 0 {
		next.Categories = append(next.Categories[:ci], next.Categories[ci+1:]...)
	}
	return next
}

// DeleteCategory removes the named category and all of its items. Name
// matching is case-insensitive like the other name-addressed paths. No-op if
// not found.
func DeleteCategory(cl Checklist, categoryName string) Checklist {
	next := cl.Clone()
	ci := next.findCategory(categoryName)
	if ci < 0 {
		return next
	}
	next.Categories = append(next.Categories[:ci], next.Categories[ci+1:]...)
	return next
}

// Merge reconciles freshly generated output into the persisted checklist.
// Incoming categories are matched against existing ones by normalized name;
// on a match the existing category keeps its original casing and receives only
// those incoming items whose normalized text is not already present in it
// (per-category duplicate suppression). Unmatched incoming categories are
// appended whole at the end. Existing items are never removed or reordered.
func Merge(existing, incoming Checklist) Checklist {
	if existing.IsEmpty() {
		return incoming.Clone()
	}

	next := existing.Clone()
	for _, inCat := range incoming.Categories {
		if len(inCat.Items) == 0 {
			continue
		}
		ci := next.findCategory(inCat.Name)
		if ci < 0 {
			next.Categories = append(next.Categories, inCat.Clone())
			continue
		}

		have := make(map[string]bool, len(next.Categories[ci].Items))
		for _, item := range next.Categories[ci].Items {
			have[NormalizeKey(item.Text)] = true
		}
		for _, item := range inCat.Items {
			key := NormalizeKey(item.Text)
			if have[key] {
				continue
			}
			have[key] = true
			next.Categories[ci].Items = append(next.Categories[ci].Items, item.Clone())
		}
	}
	return next
}
