package matcher

import (
	"fmt"
	"strings"

	"go.uber.org/mock/gomock"
)

type rowTextMatcher struct {
	want []string
}

// Matches compares each cell through fmt, so decimals with different scales
// but the same text are equal.
func (m rowTextMatcher) Matches(x interface{}) bool {
	values, ok := x.([]interface{})
	if !ok || len(values) != len(m.want) {
		return false
	}
	for i, v := range values {
		if fmt.Sprint(v) != m.want[i] {
			return false
		}
	}
	return true
}

func (m rowTextMatcher) String() string {
	return fmt.Sprintf("row [%s]", strings.Join(m.want, ", "))
}

// RowText matches a sheet row by the printed text of its cells.
func RowText(want ...string) gomock.Matcher {
	return rowTextMatcher{want: want}
}
