package entity

import "time"

// News is one item of the museum news feed.
// PublishDate is the API's createdAt and Author its createdBy.
type News struct {
	ID          string
	Title       string
	Content     string
	PublishDate string
	Author      string
	ImageURL    string
	UpdatedAt   time.Time
}

// Validate checks the rules of the news form.
func (n *News) Validate() error {
	var errs ValidationErrors
	required(&errs, "title", n.Title, "Заголовок обязателен для заполнения")
	required(&errs, "content", n.Content, "Содержание обязательно для заполнения")
	validateImageURL(&errs, "imageUrl", n.ImageURL)
	return errs.Err()
}
