package catalog

import "cinematch/internal/domain"

// SampleTitles is used for suggestions when /movies fails or returns nothing
var SampleTitles = []string{
	"The Shawshank Redemption", "The Godfather", "The Dark Knight",
	"Pulp Fiction", "The Matrix", "Forrest Gump", "Fight Club",
	"Inception", "The Lord of the Rings", "Interstellar", "Dune: Part Two",
	"The Fall Guy", "Peaky Blinders", "Spider-Man: No Way Home",
	"Avatar", "Titanic", "Gladiator", "The Avengers", "Jurassic Park",
}

// SampleRecommendations are shown when /recommend fails or returns nothing.
// They carry no score, so cards show 0.0%.
var SampleRecommendations = []domain.Recommendation{
	{
		Title:      "Inception",
		PosterPath: "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_.jpg",
	},
	{
		Title:      "Interstellar",
		PosterPath: "https://m.media-amazon.com/images/M/MV5BZjdkOTU3MDktN2IxOS00OGEyLWFmMjktY2FiMmZkNWIyODZiXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_.jpg",
	},
	{
		Title:      "The Matrix",
		PosterPath: "https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAtNDQ0Zi00ZTVkLWI0MTEtMDllZjNkYzNjNTc4L2ltYWdlXkEyXkFqcGdeQXVyNjU0OTQ0OTY@._V1_.jpg",
	},
	{
		Title:      "The Dark Knight",
		PosterPath: "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_.jpg",
	},
	{
		Title:      "Pulp Fiction",
		PosterPath: "https://m.media-amazon.com/images/M/MV5BNGNhMDIzZTUtNTBlZi00MTRlLWFjM2ItYzViMjE3YzI5MjljXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_.jpg",
	},
}

// FallbackRecommendations returns a copy of the sample recommendations
func FallbackRecommendations() []domain.Recommendation {
	out := make([]domain.Recommendation, len(SampleRecommendations))
	copy(out, SampleRecommendations)
	return out
}
