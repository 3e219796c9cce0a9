package models

import "time"

// Publication represents one publication folder in the content tree.
type Publication struct {
	Slug      string    `json:"slug"`
	Path      string    `json:"path"` // content entry file
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Date      string    `json:"date,omitempty"` // raw front matter value
	SortDate  time.Time `json:"sort_date"`
	URL       string    `json:"url"`
	PDF       string    `json:"pdf,omitempty"`
	Image     string    `json:"image,omitempty"`
	AuthorIDs []string  `json:"author_ids,omitempty"`
}

// HasAuthor reports whether id is one of the publication's author ids.
func (p Publication) HasAuthor(id string) bool {
	for _, a := range p.AuthorIDs {
		if a == id {
			return true
		}
	}
	return false
}
