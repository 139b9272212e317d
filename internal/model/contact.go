package model

import "time"

// InquiryType classifies a contact form submission.
type InquiryType string

const (
	InquiryCollaboration InquiryType = "collaboration"
	InquiryCommission    InquiryType = "commission"
	InquiryInquiry       InquiryType = "inquiry"
	InquiryFeedback      InquiryType = "feedback"
	InquiryGeneral       InquiryType = "general"
)

// Valid reports whether t is one of the known inquiry types.
func (t InquiryType) Valid() bool {
	switch t {
	case InquiryCollaboration, InquiryCommission, InquiryInquiry, InquiryFeedback, InquiryGeneral:
		return true
	}
	return false
}

// ContactSubmission is a message submitted via the contact form.
// Read and Archived are server-owned moderation flags: they are forced to
// false at intake and are the only fields that change afterwards.
type ContactSubmission struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone,omitempty"`
	Subject         string      `json:"subject,omitempty"`
	Message         string      `json:"message"`
	InquiryType     InquiryType `json:"inquiry_type"`
	ProjectInterest string      `json:"project_interest,omitempty"`
	Read            bool        `json:"read"`
	Archived        bool        `json:"archived"`
	UserAgent       string      `json:"user_agent,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ContactListOptions carries filter and pagination parameters for listing
// contact submissions. Archived submissions are excluded unless
// IncludeArchived is set.
type ContactListOptions struct {
	IncludeArchived bool
	PageSize        int
	Cursor          string
}

// ContactPage is one page of a cursor-paginated submission listing.
type ContactPage struct {
	Submissions []*ContactSubmission `json:"submissions"`
	NextCursor  string               `json:"next_cursor"`
}
