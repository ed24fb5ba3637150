package model

import "time"

// Repository is one repository as returned by the GitHub API, normalized.
// Values are never mutated after the loader builds them.
type Repository struct {
	// ID is the GitHub repository id, stable across fetches
	ID int64 `json:"id"`

	// Name is the repository name, unique per owner
	Name string `json:"name"`

	// Description is the free text description, empty when absent
	Description string `json:"description,omitempty"`

	// Language is the primary language label, empty when GitHub reports null
	Language string `json:"language,omitempty"`

	// Stars is the stargazers count
	Stars int `json:"stargazers_count"`

	// Fork reports whether the repository is a fork
	Fork bool `json:"fork"`

	// HTMLURL is the canonical web URL
	HTMLURL string `json:"html_url"`

	// UpdatedAt is the last update time reported by GitHub
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLanguage reports whether GitHub detected a primary language.
func (r Repository) HasLanguage() bool {
	return r.Language != ""
}

// HasDescription reports whether the repository has a description.
func (r Repository) HasDescription() bool {
	return r.Description != ""
}
