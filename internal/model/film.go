package model

import "time"

// Film represents a movie as served by the remote catalogue API.  The
// gateway never creates or mutates films; it only relays them to the
// browser client.
//
// Fields:
//  ID          – remote identifier.
//  Title       – display title.
//  Description – synopsis text.
//  Duration    – running time in minutes.
//  AgeRating   – certificate label such as "12+".
//  ImageURL    – optional poster URL.
//  Genre       – optional genre label.
//  Rating      – optional aggregate review score.
type Film struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	AgeRating   string    `json:"ageRating"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Review is a customer review attached to a film.
type Review struct {
	ID        int64     `json:"id"`
	FilmID    string    `json:"filmId"`
	ClientID  string    `json:"clientId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination describes the paging envelope returned by remote list
// endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
