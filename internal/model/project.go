package model

import "time"

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

const (
	CategoryAnimation       ProjectCategory = "animation"
	CategoryCharacterDesign ProjectCategory = "character-design"
	CategoryDiorama         ProjectCategory = "diorama"
	CategoryCollaborative   ProjectCategory = "collaborative"
)

// Valid reports whether c is one of the known project categories.
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryAnimation, CategoryCharacterDesign, CategoryDiorama, CategoryCollaborative:
		return true
	}
	return false
}

// ProjectStatus is the publication state of a project.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusPublished ProjectStatus = "published"
	StatusArchived  ProjectStatus = "archived"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ProjectImage is a single image attached to a project.
type ProjectImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Type   string `json:"type"` // hero, concept, render, turnaround, detail, process
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ProjectVideo is an embedded or linked video on a project page.
type ProjectVideo struct {
	Title        string `json:"title"`
	VimeoID      string `json:"vimeo_id,omitempty"`
	YouTubeID    string `json:"youtube_id,omitempty"`
	URL          string `json:"url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// ProjectSection is one block of a project's detail page.
type ProjectSection struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Order   int            `json:"order"`
	Type    string         `json:"type"` // text, image-grid, video, gallery, feature
	Images  []ProjectImage `json:"images,omitempty"`
}

// ProjectMetadata carries free-form production details.
type ProjectMetadata struct {
	Technologies  []string `json:"technologies,omitempty"`
	Collaborators []string `json:"collaborators,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Credits       string   `json:"credits,omitempty"`
}

// Project is a portfolio project document.
type Project struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	Tagline          string           `json:"tagline"`
	ShortDescription string           `json:"short_description"`
	FullDescription  string           `json:"full_description"`
	Category         ProjectCategory  `json:"category"`
	Images           []ProjectImage   `json:"images"`
	Videos           []ProjectVideo   `json:"videos,omitempty"`
	Sections         []ProjectSection `json:"sections,omitempty"`
	Metadata         *ProjectMetadata `json:"metadata,omitempty"`
	Featured         bool             `json:"featured"`
	DisplayOrder     int              `json:"display_order"`
	Status           ProjectStatus    `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProjectPatch describes a partial update. Nil fields are left untouched;
// slice fields replace the stored value when non-nil.
type ProjectPatch struct {
	Title            *string
	Slug             *string
	Tagline          *string
	ShortDescription *string
	FullDescription  *string
	Category         *ProjectCategory
	Images           []ProjectImage
	Videos           []ProjectVideo
	Sections         []ProjectSection
	Metadata         *ProjectMetadata
	Featured         *bool
	DisplayOrder     *int
	Status           *ProjectStatus
}

// ProjectFilters carries the field-equality predicates for listing projects.
type ProjectFilters struct {
	Category *ProjectCategory
	Featured *bool
	Status   *ProjectStatus
}

// ProjectPage is one page of a cursor-paginated project listing.
// NextCursor is empty when there are no further pages.
type ProjectPage struct {
	Projects   []*Project `json:"projects"`
	NextCursor string     `json:"next_cursor"`
}
