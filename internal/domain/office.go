package domain

import "time"

// Office is a rentable workspace listing, the central entity of the site.
// PublishedAt nil means the listing is a draft and hidden from the public site.
type Office struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Slug        string     `json:"slug"`
	Arr         int        `json:"arr"`
	PriceCents  int        `json:"priceCents"`
	NbPosts     int        `json:"nbPosts"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	IsFake      bool       `json:"isFake"`
	PublishedAt *time.Time `json:"publishedAt"`
	Photos      []Photo    `json:"photos"`
	Services    []Service  `json:"services"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Photo struct {
	ID       uint   `json:"id"`
	OfficeID uint   `json:"officeId"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Position int    `json:"position"`
}

// Service is a catalog amenity ("WiFi", "Salle de réunion", ...) attachable
// to any number of offices.
type Service struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// OfficeFilter narrows office listings. Zero values mean "no constraint".
type OfficeFilter struct {
	PublishedOnly bool
	Arr           int
	MaxPriceCents int
	MinPosts      int
}
