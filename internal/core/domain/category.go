package domain

// Category is the top-level container grouping presentation folders.
// The id is assigned by the catalog service and never changes; name is
// the only mutable field.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Folder is a named workspace under a category holding one
// presentation's assets. The (CategoryID, Name) pair addresses every
// asset inside it; the catalog exposes no rename or delete for folders.
type Folder struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}
