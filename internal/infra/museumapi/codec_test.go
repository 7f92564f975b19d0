package museumapi_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"museum-web/internal/infra/museumapi"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"Орден Славы", []string{"Орден Славы"}},
		{"Орден Славы, Медаль «За отвагу»", []string{"Орден Славы", "Медаль «За отвагу»"}},
		{" a ,, b ,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, museumapi.SplitList(tt.in)); diff != "" {
			t.Errorf("SplitList(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestJoinList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{}, ""},
		{[]string{" Сталинградская битва ", "", "Курская битва"}, "Сталинградская битва, Курская битва"},
	}

	for _, tt := range tests {
		if got := museumapi.JoinList(tt.in); got != tt.want {
			t.Errorf("JoinList(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	items := []string{"Курская битва", "Битва за Днепр"}
	if diff := cmp.Diff(items, museumapi.SplitList(museumapi.JoinList(items))); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
