package model

import "time"

// GalleryCategory classifies a gallery item.
type GalleryCategory string

const (
	GalleryCharacterArt  GalleryCategory = "character-art"
	GalleryConceptArt    GalleryCategory = "concept-art"
	GalleryFinishedPiece GalleryCategory = "finished-pieces"
	GallerySketch        GalleryCategory = "sketches"
	GalleryPersonalWork  GalleryCategory = "personal-work"
)

// Valid reports whether c is one of the known gallery categories.
func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryCharacterArt, GalleryConceptArt, GalleryFinishedPiece, GallerySketch, GalleryPersonalWork:
		return true
	}
	return false
}

// GalleryImage is the image payload of a gallery item.
type GalleryImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// GalleryItem is a standalone artwork shown on the gallery page.
// ProjectID is a weak reference: deleting the project does not cascade here.
type GalleryItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Image        GalleryImage    `json:"image"`
	Category     GalleryCategory `json:"category"`
	DisplayOrder int             `json:"display_order"`
	ProjectID    string          `json:"project_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// GalleryPatch describes a partial update to a gallery item.
type GalleryPatch struct {
	Title        *string
	Description  *string
	Image        *GalleryImage
	Category     *GalleryCategory
	DisplayOrder *int
	ProjectID    *string
}

// GalleryFilters carries the field-equality predicates for listing gallery items.
type GalleryFilters struct {
	Category  *GalleryCategory
	ProjectID *string
}

// GalleryPage is one page of a cursor-paginated gallery listing.
type GalleryPage struct {
	Items      []*GalleryItem `json:"items"`
	NextCursor string         `json:"next_cursor"`
}
