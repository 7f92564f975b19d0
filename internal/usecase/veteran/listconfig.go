package veteran

import (
	"museum-web/internal/domain/entity"
	"museum-web/internal/listview"
)

// Filter and sort names used in query strings.
const (
	FilterRank = "rank"
	FilterUnit = "unit"

	SortLastName   = "lastName"
	SortFirstName  = "firstName"
	SortMiddleName = "middleName"
	SortRank       = "rank"
	SortBirthDate  = "birthDate"
	SortDeathDate  = "deathDate"
)

var (
	lastName     = listview.Field[*entity.Veteran](func(v *entity.Veteran) string { return v.LastName })
	firstName    = listview.Field[*entity.Veteran](func(v *entity.Veteran) string { return v.FirstName })
	middleName   = listview.Field[*entity.Veteran](func(v *entity.Veteran) string { return v.MiddleName })
	rank         = listview.Field[*entity.Veteran](func(v *entity.Veteran) string { return v.Rank })
	militaryUnit = listview.Field[*entity.Veteran](func(v *entity.Veteran) string { return v.MilitaryUnit })
	birthDate    = listview.Field[*entity.Veteran](func(v *entity.Veteran) string { return v.BirthDate })
	deathDate    = listview.Field[*entity.Veteran](func(v *entity.Veteran) string { return v.DeathDate })
)

// PublicListConfig drives /veterans: name search, rank select and a free-text
// unit filter.
func PublicListConfig() listview.Config[*entity.Veteran] {
	return listview.Config[*entity.Veteran]{
		SearchFields: []listview.Field[*entity.Veteran]{firstName, lastName, middleName},
		Categories: map[string]listview.Category[*entity.Veteran]{
			FilterRank: {Field: rank},
			FilterUnit: {Field: militaryUnit, Mode: listview.MatchContains},
		},
		SortKeys: map[string]listview.SortKey[*entity.Veteran]{
			SortLastName: {Field: lastName, Kind: listview.StringKey},
		},
		DefaultSort: listview.SortSpec{Key: SortLastName, Dir: listview.Asc},
	}
}

// AdminListConfig drives /admin/veterans: exact rank and unit selects and
// sortable columns.
func AdminListConfig() listview.Config[*entity.Veteran] {
	return listview.Config[*entity.Veteran]{
		SearchFields: []listview.Field[*entity.Veteran]{firstName, lastName, middleName},
		Categories: map[string]listview.Category[*entity.Veteran]{
			FilterRank: {Field: rank},
			FilterUnit: {Field: militaryUnit},
		},
		SortKeys: map[string]listview.SortKey[*entity.Veteran]{
			SortLastName:   {Field: lastName, Kind: listview.StringKey},
			SortFirstName:  {Field: firstName, Kind: listview.StringKey},
			SortMiddleName: {Field: middleName, Kind: listview.StringKey},
			SortRank:       {Field: rank, Kind: listview.StringKey},
			SortBirthDate:  {Field: birthDate, Kind: listview.DateKey},
			SortDeathDate:  {Field: deathDate, Kind: listview.DateKey},
		},
		DefaultSort: listview.SortSpec{Key: SortLastName, Dir: listview.Asc},
	}
}
