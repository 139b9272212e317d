package model

import "time"

// SingletonID is the fixed document key of the site_config and about
// collections. Exactly one row exists per collection, addressed by this key.
const SingletonID = "main"

// SiteInfo is the site-wide identity block.
type SiteInfo struct {
	SiteName    string `json:"site_name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	OwnerName   string `json:"owner_name"`
}

// ContactInfo is the public contact block shown in the footer and contact page.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// SocialLink is one external profile link.
type SocialLink struct {
	Platform string `json:"platform"` // instagram, linkedin, twitter, facebook, behance, artstation
	URL      string `json:"url"`
	Display  bool   `json:"display"`
}

// NavigationItem is one menu entry, optionally with one level of children.
type NavigationItem struct {
	Label    string           `json:"label"`
	Href     string           `json:"href"`
	Order    int              `json:"order"`
	Children []NavigationItem `json:"children,omitempty"`
}

// Footer holds the footer content.
type Footer struct {
	Copyright string `json:"copyright"`
}

// SiteConfig is the singleton site configuration document.
type SiteConfig struct {
	ID          string           `json:"id"`
	SiteInfo    SiteInfo         `json:"site_info"`
	ContactInfo ContactInfo      `json:"contact_info"`
	SocialLinks []SocialLink     `json:"social_links"`
	Navigation  []NavigationItem `json:"navigation"`
	Footer      Footer           `json:"footer"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// SiteConfigPatch describes a partial update to the site configuration.
type SiteConfigPatch struct {
	SiteInfo    *SiteInfo
	ContactInfo *ContactInfo
	SocialLinks []SocialLink
	Navigation  []NavigationItem
	Footer      *Footer
}

// AboutImage is an image inside an about-page section.
type AboutImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	Alignment string `json:"alignment"` // left, right, full
}

// AboutSection is one block of the about page.
type AboutSection struct {
	ID      string       `json:"id"`
	Title   string       `json:"title,omitempty"`
	Content string       `json:"content"`
	Order   int          `json:"order"`
	Images  []AboutImage `json:"images,omitempty"`
}

// AboutContent is the singleton about-page document.
type AboutContent struct {
	ID           string         `json:"id"`
	HeroTitle    string         `json:"hero_title"`
	HeroSubtitle string         `json:"hero_subtitle,omitempty"`
	BioText      string         `json:"bio_text"`
	Sections     []AboutSection `json:"sections"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AboutPatch describes a partial update to the about content.
type AboutPatch struct {
	HeroTitle    *string
	HeroSubtitle *string
	BioText      *string
	Sections     []AboutSection
}
