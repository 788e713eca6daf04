package quote

import (
	"quotes/internal/jsonutil"
)

var requiredFields = []string{"content", "author"}

// DecodeQuote decodes a JSON object into a Quote. Unknown fields are ignored;
// a missing or non-string content or author is a *DecodeError.
func DecodeQuote(data []byte) (Quote, error) {
	if err := jsonutil.RequireStrings(data, requiredFields...); err != nil {
		return Quote{}, &DecodeError{Cause: err}
	}
	var q Quote
	if err := jsonutil.UnmarshalWithContext(data, &q, "decoding quote body"); err != nil {
		return Quote{}, &DecodeError{Cause: err}
	}
	return q, nil
}
