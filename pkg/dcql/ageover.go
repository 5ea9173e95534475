package dcql

import (
	"regexp"
	"strings"
)

// ageOverPattern matches an ISO 18013-5 age_over_NN element identifier:
// the literal prefix "age_over_" followed by two or more decimal digits,
// no sign and no leading junk. A single trailing digit (e.g. "age_over_9")
// or a non-digit suffix does not match.
var ageOverPattern = regexp.MustCompile(`^age_over_([0-9]{2,})$`)

// isAgeOverIdentifier reports whether identifier has the age_over_
// prefix, without validating the suffix. Used to decide dispatch in tag
// selection before committing to the stricter parse below. The bare
// prefix with no digits ("age_over_") still counts as having the
// prefix, so it dispatches into parseAgeOver and fails there with
// InvalidAgeOverFormat instead of silently falling through to normal
// tag selection.
func isAgeOverIdentifier(identifier string) bool {
	return strings.HasPrefix(identifier, "age_over_")
}

// parseAgeOver parses an age_over_NN identifier, returning the parsed
// threshold on success. Malformed input (wrong digit count, signed,
// non-digit suffix) fails with InvalidAgeOverFormat.
func parseAgeOver(identifier string) (int, error) {
	m := ageOverPattern.FindStringSubmatch(identifier)
	if m == nil {
		return 0, ErrInvalidAgeOverFormat(identifier)
	}

	nn := 0
	for _, c := range m[1] {
		nn = nn*10 + int(c-'0')
	}
	return nn, nil
}
