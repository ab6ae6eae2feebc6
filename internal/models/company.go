package models

import "time"

// Company is a client that orders tussles. A company owns its tussles.
type Company struct {
	ID   string
	Name string

	// LogoURL is the public URL of the company logo, empty when unset.
	LogoURL string

	CreatedAt time.Time

	// Tussles is populated only when the query embeds them.
	Tussles []Tussle
}
