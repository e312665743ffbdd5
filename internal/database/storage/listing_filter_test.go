package storage

import (
	"reflect"
	"testing"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestBuildListingFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.ListingFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "no filters",
			filter:    domain.ListingFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "location only",
			filter:    domain.ListingFilter{Location: "NY"},
			wantWhere: " WHERE location = $1",
			wantArgs:  []interface{}{"NY"},
		},
		{
			name:      "min price only",
			filter:    domain.ListingFilter{MinPrice: floatPtr(150)},
			wantWhere: " WHERE price >= $1",
			wantArgs:  []interface{}{150.0},
		},
		{
			name:      "max price only",
			filter:    domain.ListingFilter{MaxPrice: floatPtr(500)},
			wantWhere: " WHERE price <= $1",
			wantArgs:  []interface{}{500.0},
		},
		{
			name:      "price range",
			filter:    domain.ListingFilter{MinPrice: floatPtr(100), MaxPrice: floatPtr(200)},
			wantWhere: " WHERE price >= $1 AND price <= $2",
			wantArgs:  []interface{}{100.0, 200.0},
		},
		{
			name:      "all filters combined with AND",
			filter:    domain.ListingFilter{Location: "LA", MinPrice: floatPtr(100), MaxPrice: floatPtr(200)},
			wantWhere: " WHERE location = $1 AND price >= $2 AND price <= $3",
			wantArgs:  []interface{}{"LA", 100.0, 200.0},
		},
		{
			name:      "zero min price is a real constraint",
			filter:    domain.ListingFilter{MinPrice: floatPtr(0)},
			wantWhere: " WHERE price >= $1",
			wantArgs:  []interface{}{0.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildListingFilter(tt.filter)
			if where != tt.wantWhere {
				t.Errorf("buildListingFilter() where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("buildListingFilter() args = %v, want %v", args, tt.wantArgs)
			}
			if len(tt.wantArgs) > 0 && !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("buildListingFilter() args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildListingOrder(t *testing.T) {
	tests := []struct {
		name string
		sort domain.ListingSort
		want string
	}{
		{
			name: "no sort column",
			sort: domain.ListingSort{},
			want: "",
		},
		{
			name: "price ascending by default",
			sort: domain.ListingSort{Column: "price"},
			want: " ORDER BY price ASC",
		},
		{
			name: "price descending",
			sort: domain.ListingSort{Column: "price", Direction: "desc"},
			want: " ORDER BY price DESC",
		},
		{
			name: "direction is case-insensitive",
			sort: domain.ListingSort{Column: "title", Direction: "DeSc"},
			want: " ORDER BY title DESC",
		},
		{
			name: "invalid direction falls back to ASC",
			sort: domain.ListingSort{Column: "id", Direction: "sideways"},
			want: " ORDER BY id ASC",
		},
		{
			name: "column outside the allow-list is ignored",
			sort: domain.ListingSort{Column: "owner_id", Direction: "desc"},
			want: "",
		},
		{
			name: "injection attempt is ignored",
			sort: domain.ListingSort{Column: "price; DROP TABLE listings", Direction: "desc"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildListingOrder(tt.sort); got != tt.want {
				t.Errorf("buildListingOrder() = %q, want %q", got, tt.want)
			}
		})
	}
}
