package models

import "html/template"

// Post represents one blog entry, normalized for the listing.
type Post struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	ReadingTime int    `json:"readingTime"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
}

// PostDetail carries a single post together with its body, both raw
// markdown and rendered HTML.
type PostDetail struct {
	Post
	Body string        `json:"body"`
	HTML template.HTML `json:"html"`
}
