package model

import (
	"errors"
	"strings"
)

const (
	MediaTypeMovie  = "movie"
	MediaTypeSeries = "series"
)

// Movie represents a movie or a series; MediaType discriminates. Series-only
// fields (season/episode counts) are zero for movies. Genres are stored as
// comma-delimited text.
type Movie struct {
	ID           int64   `db:"id" json:"id"`
	Title        string  `db:"title" json:"title"`
	MediaType    string  `db:"media_type" json:"media_type"`
	Year         int     `db:"year" json:"year"`
	Runtime      int     `db:"runtime" json:"runtime"`
	Overview     string  `db:"overview" json:"overview"`
	PosterURL    string  `db:"poster_url" json:"poster_url"`
	BackdropURL  string  `db:"backdrop_url" json:"backdrop_url"`
	Genres       string  `db:"genres" json:"-"`
	Rating       float64 `db:"rating" json:"rating"`
	SeasonCount  int     `db:"season_count" json:"season_count"`
	EpisodeCount int     `db:"episode_count" json:"episode_count"`
}

// GenreList splits the delimited genres column into individual genres.
func (m *Movie) GenreList() []string {
	if m.Genres == "" {
		return nil
	}
	parts := strings.Split(m.Genres, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// MovieFilter narrows List queries. Zero values mean "no constraint".
type MovieFilter struct {
	MediaType string
	Genre     string
	Search    string
	Limit     int
	Offset    int
}

var ErrMovieNotFound = errors.New("movie not found")
