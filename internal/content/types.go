// Package content holds the portfolio's literal page content and the value
// types the view layer renders.
package content

import "github.com/mehulkansal/portfolio/internal/icon"

// Side selects which horizontal side a timeline card sits on at wide viewports.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Experience is one row in the work history timeline.
type Experience struct {
	DateRange string   `validate:"required"`
	Title     string   `validate:"required"`
	Company   string   `validate:"required"`
	Bullets   []string `validate:"dive,required"`
	Skills    []string `validate:"dive,required"`
	Side      Side
}

// Project is one portfolio project card. Empty LiveURL or SourceURL means
// the link is absent.
type Project struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	ImageURL    string   `validate:"required"`
	Skills      []string `validate:"dive,required"`
	LiveURL     string   `validate:"omitempty,url"`
	SourceURL   string   `validate:"omitempty,url"`
}

type Achievement struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

type Education struct {
	Degree      string `validate:"required"`
	Institution string `validate:"required"`
	Period      string
	Grade       string
	Location    string
}

// SocialProfile is a hero-section link rendered as an icon.
type SocialProfile struct {
	Network icon.Name `validate:"required"`
	URL     string    `validate:"required,url"`
	Label   string    `validate:"required"`
}

type Profile struct {
	Name      string          `validate:"required"`
	Headline  string          `validate:"required"`
	Summary   string
	PhotoURL  string          `validate:"required"`
	AvatarURL string
	Socials   []SocialProfile `validate:"dive"`
}

// Contact is the closing call-to-action.
type Contact struct {
	Heading     string `validate:"required"`
	Pitch       string
	Email       string `validate:"required,email"`
	ButtonLabel string `validate:"required"`
}

// Site is everything the page renders.
type Site struct {
	Profile      Profile
	Experience   []Experience  `validate:"dive"`
	Projects     []Project     `validate:"dive"`
	Skills       []string      `validate:"dive,required"`
	Achievements []Achievement `validate:"dive"`
	Education    []Education   `validate:"dive"`
	Contact      Contact
	Footer       string
}
