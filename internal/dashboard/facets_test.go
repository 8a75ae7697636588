package dashboard_test

import (
	"reflect"
	"testing"

	"telestat/internal/dashboard"
	"telestat/internal/model"
)

func facetMessages() []model.Message {
	return []model.Message{
		{Group: &model.Group{Title: "Support"}, User: &model.User{FullName: "Bobur Karimov"}},
		{Group: &model.Group{Title: "Sales"}, User: &model.User{FirstName: "Aziza"}},
		{Group: &model.Group{Name: "Sales"}, User: &model.User{FullName: "Bobur Karimov"}},
		{Group: nil, User: &model.User{}},
		{Group: &model.Group{Title: "Support"}, User: nil},
	}
}

func TestGroupTitles(t *testing.T) {
	t.Parallel()

	got := dashboard.GroupTitles(facetMessages())
	want := []string{"Sales", "Support"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GroupTitles = %v, want %v", got, want)
	}
}

func TestUserNames(t *testing.T) {
	t.Parallel()

	got := dashboard.UserNames(facetMessages())
	want := []string{"Aziza", "Bobur Karimov"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("UserNames = %v, want %v", got, want)
	}
}

func TestUserNamesInGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		group string
		want  []string
	}{
		{"group with both title and name spellings", "Sales", []string{"Aziza", "Bobur Karimov"}},
		{"group with an anonymous poster", "Support", []string{"Bobur Karimov"}},
		{"unknown group", "Marketing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dashboard.UserNamesInGroup(facetMessages(), tt.group)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("UserNamesInGroup(%q) = %v, want %v", tt.group, got, tt.want)
			}
		})
	}
}
