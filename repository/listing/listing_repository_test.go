package listing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/model"
)

func TestBuildFilterQuery(t *testing.T) {
	min := 0.0
	max := 500.0

	tests := []struct {
		name         string
		filter       *model.ListingFilter
		wantContains []string
		wantNot      []string
		wantArgs     []any
	}{
		{
			name:         "no parameters impose no predicates",
			filter:       &model.ListingFilter{},
			wantContains: []string{"WHERE 1=1"},
			wantNot:      []string{"AND", "ORDER BY"},
			wantArgs:     []any{},
		},
		{
			name:         "name is parameterized with LIKE wrapping",
			filter:       &model.ListingFilter{Name: "lamp"},
			wantContains: []string{"l.listing_name LIKE ?"},
			wantNot:      []string{"lamp"},
			wantArgs:     []any{"%lamp%"},
		},
		{
			name:         "zero min price still filters",
			filter:       &model.ListingFilter{MinPrice: &min},
			wantContains: []string{"l.listing_price >= ?"},
			wantArgs:     []any{0.0},
		},
		{
			name:   "all predicates combine in order",
			filter: &model.ListingFilter{Name: "lamp", City: "Istanbul", MinPrice: &min, MaxPrice: &max, Genre: "Electronics"},
			wantContains: []string{
				"l.listing_name LIKE ?",
				"u.user_city = ?",
				"l.listing_price >= ?",
				"l.listing_price <= ?",
				"g.genre_name = ?",
			},
			wantArgs: []any{"%lamp%", "Istanbul", 0.0, 500.0, "Electronics"},
		},
		{
			name:         "valid sort pair appends ORDER BY",
			filter:       &model.ListingFilter{SortBy: constant.SortByPrice, SortOrder: constant.SortOrderDesc},
			wantContains: []string{"ORDER BY l.listing_price DESC"},
			wantArgs:     []any{},
		},
		{
			name:     "sort by alone does not order",
			filter:   &model.ListingFilter{SortBy: constant.SortByName},
			wantNot:  []string{"ORDER BY"},
			wantArgs: []any{},
		},
		{
			name:     "unknown sort values are ignored",
			filter:   &model.ListingFilter{SortBy: "user_passwordhashes", SortOrder: "asc"},
			wantNot:  []string{"ORDER BY", "user_passwordhashes"},
			wantArgs: []any{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildFilterQuery(tt.filter)

			for _, want := range tt.wantContains {
				if !strings.Contains(query, want) {
					t.Fatalf("query missing %q:\n%s", want, query)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(query, not) {
					t.Fatalf("query should not contain %q:\n%s", not, query)
				}
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestSortClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
		wantOK    bool
	}{
		{"name ascending", constant.SortByName, constant.SortOrderAsc, " ORDER BY l.listing_name ASC", true},
		{"price descending", constant.SortByPrice, constant.SortOrderDesc, " ORDER BY l.listing_price DESC", true},
		{"missing order", constant.SortByPrice, "", "", false},
		{"missing column", "", constant.SortOrderAsc, "", false},
		{"injection attempt rejected", "listing_price; DROP TABLE users_table", "asc", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sortClause(tt.sortBy, tt.sortOrder)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("sortClause(%q, %q) = (%q, %v), want (%q, %v)", tt.sortBy, tt.sortOrder, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
