package museumapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"museum-web/internal/domain/entity"
	"museum-web/internal/pkg/isodate"
)

// SplitList decodes a comma-joined list field such as awards or battles.
// Items are trimmed and blanks dropped; the empty string is the empty list.
func SplitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// JoinList is the inverse of SplitList: trimmed, non-blank items joined with ", ".
func JoinList(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, ", ")
}

// flexString accepts a JSON string, number or null. The API sends user ids
// (createdBy) as numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// veteranResponse is the wire form of a veteran returned by the API.
type veteranResponse struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	MiddleName   *string    `json:"middleName"`
	BirthDate    *string    `json:"birthDate"`
	DeathDate    *string    `json:"deathDate"`
	Biography    *string    `json:"biography"`
	Rank         string     `json:"rank"`
	Awards       *string    `json:"awards"`
	MilitaryUnit string     `json:"militaryUnit"`
	Battles      *string    `json:"battles"`
	ImageURL     *string    `json:"imageUrl"`
	CreatedAt    *string    `json:"createdAt"`
	CreatedBy    flexString `json:"createdBy"`
	UpdatedAt    *string    `json:"updatedAt"`
}

// veteranRequest is the body of create and update calls.
type veteranRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	MiddleName   string  `json:"middleName"`
	BirthDate    *string `json:"birthDate"`
	DeathDate    *string `json:"deathDate"`
	Biography    string  `json:"biography"`
	Rank         string  `json:"rank"`
	Awards       string  `json:"awards"`
	MilitaryUnit string  `json:"militaryUnit"`
	Battles      string  `json:"battles"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

type newsResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ImageURL  *string    `json:"imageUrl"`
	CreatedAt *string    `json:"createdAt"`
	CreatedBy flexString `json:"createdBy"`
	UpdatedAt *string    `json:"updatedAt"`
}

type newsRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps "" to JSON null so absent dates stay absent upstream.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// utcDate sends form dates as UTC timestamps. Values that do not parse are
// passed through for the API to reject.
func utcDate(s string) string {
	if out, err := isodate.ToUTC(s); err == nil {
		return out
	}
	return s
}

func parseTime(s *string) time.Time {
	t, err := isodate.Parse(deref(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r *veteranResponse) toEntity() *entity.Veteran {
	return &entity.Veteran{
		ID:           r.ID,
		LastName:     r.LastName,
		FirstName:    r.FirstName,
		MiddleName:   deref(r.MiddleName),
		Rank:         r.Rank,
		MilitaryUnit: r.MilitaryUnit,
		BirthDate:    deref(r.BirthDate),
		DeathDate:    deref(r.DeathDate),
		Biography:    deref(r.Biography),
		Awards:       SplitList(deref(r.Awards)),
		Battles:      SplitList(deref(r.Battles)),
		ImageURL:     deref(r.ImageURL),
		CreatedAt:    parseTime(r.CreatedAt),
		CreatedBy:    string(r.CreatedBy),
		UpdatedAt:    parseTime(r.UpdatedAt),
	}
}

func newVeteranRequest(v *entity.Veteran) veteranRequest {
	return veteranRequest{
		FirstName:    strings.TrimSpace(v.FirstName),
		LastName:     strings.TrimSpace(v.LastName),
		MiddleName:   strings.TrimSpace(v.MiddleName),
		BirthDate:    optional(utcDate(v.BirthDate)),
		DeathDate:    optional(utcDate(v.DeathDate)),
		Biography:    v.Biography,
		Rank:         strings.TrimSpace(v.Rank),
		Awards:       JoinList(v.Awards),
		MilitaryUnit: strings.TrimSpace(v.MilitaryUnit),
		Battles:      JoinList(v.Battles),
		ImageURL:     strings.TrimSpace(v.ImageURL),
	}
}

func (r *newsResponse) toEntity() *entity.News {
	return &entity.News{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		PublishDate: deref(r.CreatedAt),
		Author:      string(r.CreatedBy),
		ImageURL:    deref(r.ImageURL),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

func newNewsRequest(n *entity.News) newsRequest {
	return newsRequest{
		Title:    strings.TrimSpace(n.Title),
		Content:  n.Content,
		ImageURL: strings.TrimSpace(n.ImageURL),
	}
}
