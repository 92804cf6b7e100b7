package domain

import "context"

// Image is a static media reference
type Image struct {
	Src     string `json:"src" yaml:"src"`
	Alt     string `json:"alt" yaml:"alt"`
	Width   int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height  int    `json:"height,omitempty" yaml:"height,omitempty"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"` // webp | avif | jpg | png
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"` // linkedin, github, twitter, ...
	URL      string `json:"url" yaml:"url"`
	Username string `json:"username" yaml:"username"`
}

// Availability status constants
const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

type PersonalProfile struct {
	Name            string  `json:"name" yaml:"name"`
	Title           string  `json:"title" yaml:"title"`
	Tagline         string  `json:"tagline" yaml:"tagline"`
	Bio             string  `json:"bio" yaml:"bio"`
	Location        string  `json:"location" yaml:"location"`
	Email           string  `json:"email" yaml:"email"`
	Website         *string `json:"website,omitempty" yaml:"website,omitempty"`
	ResumeURL       string  `json:"resume_url,omitempty" yaml:"resume_url,omitempty"`
	Availability    string  `json:"availability" yaml:"availability"`
	ProfileImage    *Image  `json:"profile_image,omitempty" yaml:"profile_image,omitempty"`
	MetaDescription string  `json:"meta_description,omitempty" yaml:"meta_description,omitempty"`
}

type Skill struct {
	Name              string `json:"name" yaml:"name"`
	Category          string `json:"category" yaml:"category"` // technical | design | soft | tools
	Proficiency       int    `json:"proficiency" yaml:"proficiency"`
	YearsOfExperience *int   `json:"years_of_experience,omitempty" yaml:"years_of_experience,omitempty"`
	IsPrimary         bool   `json:"is_primary,omitempty" yaml:"is_primary,omitempty"`
}

type Technology struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

type Project struct {
	Slug             string       `json:"slug" yaml:"slug"`
	Title            string       `json:"title" yaml:"title"`
	ShortDescription string       `json:"short_description" yaml:"short_description"`
	Category         string       `json:"category" yaml:"category"`
	Technologies     []Technology `json:"technologies" yaml:"technologies"`
	Role             string       `json:"role,omitempty" yaml:"role,omitempty"`
	Thumbnail        *Image       `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	LiveURL          *string      `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	SourceURL        *string      `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	Featured         bool         `json:"featured,omitempty" yaml:"featured,omitempty"`
}

type Testimonial struct {
	ID       string `json:"id" yaml:"id"`
	Content  string `json:"content" yaml:"content"`
	Author   string `json:"author" yaml:"author"`
	Title    string `json:"title" yaml:"title"`
	Company  string `json:"company" yaml:"company"`
	Rating   *int   `json:"rating,omitempty" yaml:"rating,omitempty"`
	Featured bool   `json:"featured,omitempty" yaml:"featured,omitempty"`
}

// ContactInfo is what the site shows next to the form, regardless of form status.
type ContactInfo struct {
	Email       string `json:"email" yaml:"email"`
	CalendlyURL string `json:"calendly_url,omitempty" yaml:"calendly_url,omitempty"`
}

// SiteProfile is the static content document behind the portfolio pages.
type SiteProfile struct {
	Profile      PersonalProfile `json:"profile" yaml:"profile"`
	SocialLinks  []SocialLink    `json:"social_links" yaml:"social_links"`
	Skills       []Skill         `json:"skills" yaml:"skills"`
	Projects     []Project       `json:"projects" yaml:"projects"`
	Testimonials []Testimonial   `json:"testimonials" yaml:"testimonials"`
	Contact      ContactInfo     `json:"contact" yaml:"contact"`
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*SiteProfile, error)
}
