package validation

import (
	"strings"

	"github.com/okcomputer/dividend-dashboard-backend/internal/model"
)

// ParseRange validates and normalizes the range query parameter of the
// performance endpoint. An empty value defaults to the full series.
func ParseRange(value string) (model.Range, *Error) {
	if value == "" {
		return model.RangeAll, nil
	}

	r := model.Range(strings.ToUpper(value))
	if !r.Valid() {
		return "", &Error{Fields: map[string]string{
			"range": "must be one of 1D, 1W, 1M, ALL",
		}}
	}
	return r, nil
}
