// Package pagerange parses page-selector expressions such as
// "1,3,5-10,-1" into concrete page index sets.
package pagerange

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned for malformed selector expressions.
var ErrInvalidRange = errors.New("invalid page range")

// Parse converts a page selector into a sorted, duplicate-free slice of
// zero-indexed page numbers for a document with totalPages pages.
//
// The selector is a comma-separated list of terms:
//   - "N"    a single 1-indexed page
//   - "A-B"  an inclusive 1-indexed range
//   - "-N"   a page counted from the end ("-1" is the last page)
//
// An empty selector selects every page. Selected pages beyond the end of
// the document are dropped silently; malformed terms, page number zero,
// and reversed ranges fail with ErrInvalidRange.
func Parse(selector string, totalPages int) ([]int, error) {
	if totalPages < 0 {
		return nil, fmt.Errorf("%w: negative page count %d", ErrInvalidRange, totalPages)
	}

	selector = strings.TrimSpace(selector)
	if selector == "" {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i
		}
		return pages, nil
	}

	seen := make(map[int]bool)
	for _, term := range strings.Split(selector, ",") {
		term = strings.TrimSpace(term)
		switch {
		case term == "":
			return nil, fmt.Errorf("%w: empty term in %q", ErrInvalidRange, selector)

		case strings.HasPrefix(term, "-"):
			// Counted from the end of the document.
			n, err := strconv.Atoi(term)
			if err != nil || n == 0 {
				return nil, fmt.Errorf("%w: bad term %q", ErrInvalidRange, term)
			}
			page := totalPages + n
			if page >= 0 && page < totalPages {
				seen[page] = true
			}

		case strings.Contains(term, "-"):
			first, last, _ := strings.Cut(term, "-")
			a, errA := strconv.Atoi(strings.TrimSpace(first))
			b, errB := strconv.Atoi(strings.TrimSpace(last))
			if errA != nil || errB != nil || a < 1 || b < 1 {
				return nil, fmt.Errorf("%w: bad range %q", ErrInvalidRange, term)
			}
			if b < a {
				return nil, fmt.Errorf("%w: reversed range %q", ErrInvalidRange, term)
			}
			for p := a; p <= b && p <= totalPages; p++ {
				seen[p-1] = true
			}

		default:
			n, err := strconv.Atoi(term)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: bad term %q", ErrInvalidRange, term)
			}
			if n <= totalPages {
				seen[n-1] = true
			}
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages, nil
}
