package dcql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCredentialMap() map[string]any {
	return map[string]any{
		"id":     "cred-1",
		"format": "mso_mdoc",
		"meta":   map[string]any{"doctype_value": "org.iso.18013.5.1.mDL"},
	}
}

func TestParseQuery_MissingCredentials(t *testing.T) {
	_, issues := ParseQuery(map[string]any{})
	require.Len(t, issues, 1)
	assert.Equal(t, Path{"credentials"}, issues[0].Path)
	assert.Equal(t, "Required", issues[0].Message)
}

func TestParseQuery_TypeMismatch(t *testing.T) {
	_, issues := ParseQuery(map[string]any{"credentials": "not-an-array"})
	require.Len(t, issues, 1)
	assert.Equal(t, "Expected array, received string", issues[0].Message)
}

func TestParseQuery_FormatLiteralMismatch(t *testing.T) {
	cred := validCredentialMap()
	cred["format"] = "jwt_vc"
	_, issues := ParseQuery(map[string]any{"credentials": []any{cred}})
	require.NotEmpty(t, issues)
	assert.Contains(t, issues, Issue{Path{"credentials", 0, "format"}, `Invalid literal value, expected "mso_mdoc"`})
}

func TestParseQuery_EmptyStringID(t *testing.T) {
	cred := validCredentialMap()
	cred["id"] = ""
	_, issues := ParseQuery(map[string]any{"credentials": []any{cred}})
	require.NotEmpty(t, issues)
	assert.Contains(t, issues, Issue{Path{"credentials", 0, "id"}, "String must contain at least 1 character(s)"})
}

func TestParseQuery_ArraySizeBounds(t *testing.T) {
	_, issues := ParseQuery(map[string]any{"credentials": []any{}})
	require.NotEmpty(t, issues)
	assert.Contains(t, issues, Issue{Path{"credentials"}, "Array must contain at least 1 element(s)"})
}

func TestCheckNonNegativeInt(t *testing.T) {
	n, issue := checkNonNegativeInt(float64(3), Path{"n"})
	require.Nil(t, issue)
	assert.Equal(t, 3, n)

	_, issue = checkNonNegativeInt(float64(3.5), Path{"n"})
	require.NotNil(t, issue)
	assert.Equal(t, "Expected integer, received float", issue.Message)

	_, issue = checkNonNegativeInt(float64(-1), Path{"n"})
	require.NotNil(t, issue)
	assert.Equal(t, "Number must be greater than or equal to 0", issue.Message)

	_, issue = checkNonNegativeInt("nope", Path{"n"})
	require.NotNil(t, issue)
	assert.Equal(t, "Expected number, received string", issue.Message)
}

// Scenario 7: a claim_sets entry references a claim id that does not
// exist among the credential's claims.
func TestParseQuery_ClaimSetsReferencesMissingClaim(t *testing.T) {
	cred := validCredentialMap()
	cred["claims"] = []any{
		map[string]any{"id": "c1", "path": []any{"ns", "elem"}},
	}
	cred["claim_sets"] = []any{
		[]any{"missing"},
	}
	_, issues := ParseQuery(map[string]any{"credentials": []any{cred}})
	require.Len(t, issues, 1)
	assert.Equal(t, Path{"credentials", 0, "claim_sets", 0, 0}, issues[0].Path)
	assert.Contains(t, issues[0].Message, "missing")
}

// Scenario 8: claim_sets present without claims, plus an internal
// structural issue in claim_sets itself. Both issues appear, structural
// first.
func TestParseQuery_ClaimSetsWithoutClaims(t *testing.T) {
	cred := validCredentialMap()
	cred["claim_sets"] = []any{
		[]any{""},
	}
	_, issues := ParseQuery(map[string]any{"credentials": []any{cred}})
	require.Len(t, issues, 2)
	assert.Equal(t, Issue{Path{"credentials", 0, "claim_sets", 0, 0}, "String must contain at least 1 character(s)"}, issues[0])
	assert.Equal(t, Issue{Path{"credentials", 0, "claim_sets"}, "claim_sets MUST NOT be present if claims is absent."}, issues[1])
}

func TestParseQuery_ValidMinimalQuery(t *testing.T) {
	cred := validCredentialMap()
	cred["claims"] = []any{
		map[string]any{"path": []any{"org.iso.18013.5.1", "given_name"}},
	}
	query, issues := ParseQuery(map[string]any{"credentials": []any{cred}})
	require.Empty(t, issues)
	require.NotNil(t, query)
	require.Len(t, query.Credentials, 1)
	assert.Equal(t, "cred-1", query.Credentials[0].ID)
	assert.Equal(t, "org.iso.18013.5.1.mDL", query.Credentials[0].Meta.DoctypeValue)
	assert.False(t, query.Credentials[0].Multiple)
	require.Len(t, query.Credentials[0].Claims, 1)
	assert.Equal(t, "org.iso.18013.5.1", query.Credentials[0].Claims[0].Namespace)
	assert.Equal(t, "given_name", query.Credentials[0].Claims[0].ElementIdentifier)
}

func TestParseQuery_ClaimPathWrongLength(t *testing.T) {
	cred := validCredentialMap()
	cred["claims"] = []any{
		map[string]any{"path": []any{"only-one"}},
	}
	_, issues := ParseQuery(map[string]any{"credentials": []any{cred}})
	require.NotEmpty(t, issues)
	assert.Contains(t, issues, Issue{Path{"credentials", 0, "claims", 0, "path"}, "Array must contain at least 2 element(s)"})
}

func TestParseQuery_CredentialSetsDefaultRequiredTrue(t *testing.T) {
	cred := validCredentialMap()
	query, issues := ParseQuery(map[string]any{
		"credentials": []any{cred},
		"credential_sets": []any{
			map[string]any{"options": []any{[]any{"cred-1"}}},
		},
	})
	require.Empty(t, issues)
	require.Len(t, query.CredentialSets, 1)
	assert.True(t, query.CredentialSets[0].Required)
	assert.Equal(t, [][]string{{"cred-1"}}, query.CredentialSets[0].Options)
}

func TestParseQuery_ClaimValuesRejectsContainer(t *testing.T) {
	cred := validCredentialMap()
	cred["claims"] = []any{
		map[string]any{"path": []any{"ns", "elem"}, "values": []any{[]any{"nested"}}},
	}
	_, issues := ParseQuery(map[string]any{"credentials": []any{cred}})
	require.NotEmpty(t, issues)
	assert.Equal(t, "Expected string, number, boolean or null, received array", issues[0].Message)
}
