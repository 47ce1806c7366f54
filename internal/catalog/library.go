package catalog

// ItemKind classifies a library resource.
type ItemKind string

const (
	KindTextbook     ItemKind = "Textbook"
	KindPastQuestion ItemKind = "Past Question"
	KindHandout      ItemKind = "Handout"

	// KindAll is the filter value that matches every kind.
	KindAll ItemKind = "All"
)

// ItemKinds lists the filter options in display order.
var ItemKinds = []ItemKind{KindAll, KindTextbook, KindPastQuestion, KindHandout}

// LibraryItem is a single resource in the digital library.
// Course is the owning program, or "Other" for general material.
type LibraryItem struct {
	ID     string
	Title  string
	Kind   ItemKind
	Author string
	Course string
}

var libraryItems = []LibraryItem{
	{ID: "1", Title: "Modern Operating Systems", Kind: KindTextbook, Author: "Tanenbaum", Course: "Computer Science"},
	{ID: "2", Title: "CSC 201 Past Questions (2018-2023)", Kind: KindPastQuestion, Author: "Faculty of Science", Course: "Computer Science"},
	{ID: "3", Title: "Nigerian Law of Contract", Kind: KindTextbook, Author: "Sagay", Course: "Law"},
	{ID: "4", Title: "Gray's Anatomy", Kind: KindTextbook, Author: "Susan Standring", Course: "Medicine and Surgery"},
	{ID: "5", Title: "GST 101 Handout", Kind: KindHandout, Author: "General Studies Dept", Course: "Other"},
	{ID: "6", Title: "Intro to Algorithms", Kind: KindTextbook, Author: "CLRS", Course: "Computer Science"},
	{ID: "7", Title: "Financial Reporting Standards", Kind: KindTextbook, Author: "ICAN", Course: "Accounting"},
	{ID: "8", Title: "Engineering Mathematics", Kind: KindTextbook, Author: "K.A Stroud", Course: "Mechanical Engineering"},
}

// LibraryItems returns all entries matching the given kind, or every
// entry when kind is KindAll. The filter is kind-only: items are shown
// regardless of the caller's course, and general ("Other") material is
// always eligible.
func LibraryItems(kind ItemKind) []LibraryItem {
	if kind == KindAll {
		out := make([]LibraryItem, len(libraryItems))
		copy(out, libraryItems)
		return out
	}

	var out []LibraryItem
	for _, item := range libraryItems {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}
