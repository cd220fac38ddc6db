package domain

// Topic is a subject area articles are filed under. Slug is its unique key.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
