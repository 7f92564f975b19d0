// Package entity defines the museum's domain records, Veteran and News, together
// with the form-level validation rules applied before anything is sent to the API.
package entity

import (
	"strings"
	"time"

	"museum-web/internal/pkg/isodate"
)

// Veteran is one person in the memorial archive.
// Dates are kept as the ISO strings the API returned; an empty string means absent.
type Veteran struct {
	ID           string
	LastName     string
	FirstName    string
	MiddleName   string
	Rank         string
	MilitaryUnit string
	BirthDate    string
	DeathDate    string
	Biography    string
	Awards       []string
	Battles      []string
	ImageURL     string
	CreatedAt    time.Time
	CreatedBy    string
	UpdatedAt    time.Time
}

// FullName returns "Last First Middle" without dangling spaces.
func (v *Veteran) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{v.LastName, v.FirstName, v.MiddleName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// LifeDates renders "dd.mm.yyyy – dd.mm.yyyy" with a dash for a missing side.
func (v *Veteran) LifeDates() string {
	return isodate.Display(v.BirthDate) + " – " + isodate.Display(v.DeathDate)
}

// Validate checks the rules of the veteran form. The death date check only
// applies when both dates are present and parsable.
func (v *Veteran) Validate() error {
	var errs ValidationErrors
	required(&errs, "firstName", v.FirstName, "Имя обязательно для заполнения")
	required(&errs, "lastName", v.LastName, "Фамилия обязательна для заполнения")
	required(&errs, "rank", v.Rank, "Звание обязательно для заполнения")
	required(&errs, "militaryUnit", v.MilitaryUnit, "Воинская часть обязательна для заполнения")

	birth, birthErr := parseOptionalDate(&errs, "birthDate", v.BirthDate)
	death, deathErr := parseOptionalDate(&errs, "deathDate", v.DeathDate)
	if birthErr == nil && deathErr == nil && !birth.IsZero() && !death.IsZero() && death.Before(birth) {
		errs.add("deathDate", "Дата смерти не может быть раньше даты рождения")
	}

	validateImageURL(&errs, "imageUrl", v.ImageURL)
	return errs.Err()
}

func parseOptionalDate(errs *ValidationErrors, field, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	t, err := isodate.Parse(s)
	if err != nil {
		errs.add(field, "Некорректная дата")
	}
	return t, err
}
