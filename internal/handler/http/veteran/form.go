package veteran

import (
	"net/http"
	"strings"

	"museum-web/internal/domain/entity"
	"museum-web/internal/infra/museumapi"
)

type formData struct {
	Veteran *entity.Veteran
	// Awards and Battles hold the comma separated text of the inputs.
	Awards  string
	Battles string
	Errors  map[string]string
	Action  string
	Editing bool
}

func newFormData(v *entity.Veteran, action string, editing bool) formData {
	return formData{
		Veteran: v,
		Awards:  museumapi.JoinList(v.Awards),
		Battles: museumapi.JoinList(v.Battles),
		Action:  action,
		Editing: editing,
	}
}

// parseForm reads the veteran form. Text fields are trimmed; the biography is
// kept as typed.
func parseForm(r *http.Request) (*entity.Veteran, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	f := r.PostForm
	get := func(name string) string { return strings.TrimSpace(f.Get(name)) }

	return &entity.Veteran{
		LastName:     get("lastName"),
		FirstName:    get("firstName"),
		MiddleName:   get("middleName"),
		Rank:         get("rank"),
		MilitaryUnit: get("militaryUnit"),
		BirthDate:    get("birthDate"),
		DeathDate:    get("deathDate"),
		Biography:    f.Get("biography"),
		Awards:       museumapi.SplitList(f.Get("awards")),
		Battles:      museumapi.SplitList(f.Get("battles")),
		ImageURL:     get("imageUrl"),
	}, nil
}
