// Package api exposes the veteran and news listings as read-only JSON, built by
// the same list pipeline as the HTML pages.
package api

import (
	"time"

	"museum-web/internal/domain/entity"
)

// VeteranDTO is the JSON form of a veteran.
type VeteranDTO struct {
	ID           string     `json:"id" example:"42"`
	LastName     string     `json:"last_name" example:"Иванов"`
	FirstName    string     `json:"first_name" example:"Пётр"`
	MiddleName   string     `json:"middle_name,omitempty" example:"Сергеевич"`
	Rank         string     `json:"rank" example:"Сержант"`
	MilitaryUnit string     `json:"military_unit" example:"154-я стрелковая дивизия"`
	BirthDate    string     `json:"birth_date,omitempty" example:"1921-03-15T00:00:00Z"`
	DeathDate    string     `json:"death_date,omitempty" example:"1995-05-09T00:00:00Z"`
	Biography    string     `json:"biography,omitempty"`
	Awards       []string   `json:"awards"`
	Battles      []string   `json:"battles"`
	ImageURL     string     `json:"image_url,omitempty" example:"https://museum.example/img/42.jpg"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// NewsDTO is the JSON form of a news item.
type NewsDTO struct {
	ID          string     `json:"id" example:"7"`
	Title       string     `json:"title" example:"Открытие нового зала"`
	Content     string     `json:"content"`
	PublishDate string     `json:"publish_date" example:"2024-05-09T09:00:00Z"`
	Author      string     `json:"author,omitempty" example:"admin@museum.example"`
	ImageURL    string     `json:"image_url,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func veteranDTO(v *entity.Veteran) VeteranDTO {
	return VeteranDTO{
		ID:           v.ID,
		LastName:     v.LastName,
		FirstName:    v.FirstName,
		MiddleName:   v.MiddleName,
		Rank:         v.Rank,
		MilitaryUnit: v.MilitaryUnit,
		BirthDate:    v.BirthDate,
		DeathDate:    v.DeathDate,
		Biography:    v.Biography,
		Awards:       nonNil(v.Awards),
		Battles:      nonNil(v.Battles),
		ImageURL:     v.ImageURL,
		CreatedAt:    timePtr(v.CreatedAt),
		UpdatedAt:    timePtr(v.UpdatedAt),
	}
}

func newsDTO(n *entity.News) NewsDTO {
	return NewsDTO{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		PublishDate: n.PublishDate,
		Author:      n.Author,
		ImageURL:    n.ImageURL,
		UpdatedAt:   timePtr(n.UpdatedAt),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
