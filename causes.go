// Package mortality provides stateless helpers for exploring tabular
// mortality statistics: summarizing categorical columns, parsing compound
// death-cause labels, filtering rows by category, grouping counts and
// pivoting a category into wide form. Every function reads its inputs and
// returns a fresh value, so calls are safe to run concurrently on
// independent tables.
package mortality

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/emoren/mortality_stats/dataframe"
)

// Dataset cause labels look like "001-102 I-XXII.Todas las causas": an
// ICD-style code range, one whitespace run, then the free-text name.
var rangeToken = regexp.MustCompile(`\d+-\d+`)

// CauseTypes reports whether a cause label carries a numeric code range.
// Any digit-hyphen-digit token yields "Multiple causes", even when there is
// only one such token; labels without one yield "Single cause". The naming
// is inherited from the source dataset's modeling and kept as is.
func CauseTypes(label string) string {
	if rangeToken.MatchString(label) {
		return "Multiple causes"
	}
	return "Single cause"
}

// CauseCode returns the code part of a cause label, the text before the
// first whitespace run, verbatim.
func CauseCode(label string) (string, error) {
	code, _, err := splitCauseLabel(label)
	return code, err
}

// CauseName returns the name part of a cause label, the text after the
// first whitespace run, trimmed.
func CauseName(label string) (string, error) {
	_, name, err := splitCauseLabel(label)
	return name, err
}

func splitCauseLabel(label string) (code, name string, err error) {
	i := strings.IndexFunc(label, unicode.IsSpace)
	if i < 0 {
		return "", "", errors.Wrapf(dataframe.ErrInvalidInput,
			"cause label %q has no code/name separator", label)
	}
	return label[:i], strings.TrimSpace(label[i:]), nil
}
