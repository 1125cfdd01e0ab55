package pagerange

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		total    int
		want     []int
	}{
		{"empty selects all", "", 4, []int{0, 1, 2, 3}},
		{"whitespace selects all", "  ", 3, []int{0, 1, 2}},
		{"single page", "1", 10, []int{0}},
		{"several pages", "1,3,7", 10, []int{0, 2, 6}},
		{"range", "5-8", 10, []int{4, 5, 6, 7}},
		{"single-page range", "4-4", 10, []int{3}},
		{"last page", "-1", 10, []int{9}},
		{"second to last", "-2", 10, []int{8}},
		{"mixed", "1,3,5-7,-1", 10, []int{0, 2, 4, 5, 6, 9}},
		{"duplicates collapse", "2,2,1-3", 10, []int{0, 1, 2}},
		{"overlapping ranges", "1-4,3-6", 10, []int{0, 1, 2, 3, 4, 5}},
		{"spaces around terms", " 1 , 3 , 5-6 ", 10, []int{0, 2, 4, 5}},
		{"beyond end dropped", "42", 10, []int{}},
		{"range clamped to end", "8-15", 10, []int{7, 8, 9}},
		{"negative beyond start dropped", "-30", 10, []int{}},
		{"empty document", "", 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.selector, tt.total)
			if err != nil {
				t.Fatalf("Parse(%q, %d) unexpected error: %v", tt.selector, tt.total, err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q, %d) = %v, want %v", tt.selector, tt.total, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		selector string
	}{
		{"letters", "abc"},
		{"trailing comma", "1,2,"},
		{"double comma", "1,,2"},
		{"open range", "1-"},
		{"bare dash", "-"},
		{"page zero", "0"},
		{"zero in range", "0-3"},
		{"reversed range", "7-3"},
		{"float", "1.5"},
		{"negative zero", "-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.selector, 10); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidRange", tt.selector, err)
			}
		})
	}
}

func TestParse_NegativeTotal(t *testing.T) {
	if _, err := Parse("1", -1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for negative page count, got %v", err)
	}
}
