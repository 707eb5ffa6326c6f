// Package selection carries the caller's docket selection into resolver
// calls. The shell owns its widgets; the core only ever sees this value.
package selection

import (
	"fmt"
	"net/url"
	"strconv"
)

// Context identifies one docket selection. Section is optional and only set
// for section-scoped board matter queries.
type Context struct {
	Year    int    `json:"year"`
	Month   string `json:"month"`
	Docket  string `json:"docket"`
	Section string `json:"section,omitempty"`
}

// Key is the cache key for derived results: a changed selection replaces
// everything derived under the previous key.
func (c Context) Key() string {
	return fmt.Sprintf("%d|%s|%s", c.Year, c.Month, c.Docket)
}

// FromQuery parses a selection from request query parameters.
func FromQuery(q url.Values) (Context, error) {
	ctx := Context{
		Month:   q.Get("month"),
		Docket:  q.Get("docket"),
		Section: q.Get("section"),
	}
	if y := q.Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return Context{}, fmt.Errorf("invalid year %q", y)
		}
		ctx.Year = year
	}
	return ctx, nil
}

// MonthNumber maps docket month names to their calendar order, for sorting
// dockets within a board year.
func MonthNumber(name string) int {
	order := map[string]int{
		"January": 1, "February": 2, "March": 3, "April": 4,
		"May": 5, "June": 6, "July": 7, "August": 8,
		"September": 9, "October": 10, "November": 11, "December": 12,
	}
	return order[name]
}
