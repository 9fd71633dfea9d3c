package domain

import "fmt"

// Recommendation is a single movie returned by the recommend endpoint
type Recommendation struct {
	Title           string  `json:"title"`
	PosterPath      string  `json:"poster_path"`
	SimilarityScore float64 `json:"similarity_score"`
}

// SimilarityLabel formats the score the way cards display it, e.g. "Similarity: 87.3%"
func (r Recommendation) SimilarityLabel() string {
	return fmt.Sprintf("Similarity: %.1f%%", r.SimilarityScore*100)
}

// ContactMessage is the payload of the contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Complete reports whether every field is filled in
func (m ContactMessage) Complete() bool {
	return m.Name != "" && m.Email != "" && m.Message != ""
}

// CatalogSource tells where the title catalog came from
type CatalogSource string

const (
	SourceRemote   CatalogSource = "remote"
	SourceFallback CatalogSource = "fallback"
)

// Section is a top-level area of the UI reachable from the nav bar
type Section int

const (
	SectionSearch Section = iota
	SectionRecommendations
	SectionContact
	SectionHelp
)

// Sections lists the nav bar entries in display order
var Sections = []Section{SectionSearch, SectionRecommendations, SectionContact, SectionHelp}

func (s Section) String() string {
	switch s {
	case SectionSearch:
		return "Search"
	case SectionRecommendations:
		return "Recommendations"
	case SectionContact:
		return "Contact"
	case SectionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
