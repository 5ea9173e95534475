package dcql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcql/pkg/logger"
	"dcql/pkg/mdoc"
)

func TestEvaluator_DefaultsToNoOpLogger(t *testing.T) {
	e := New()
	require.NotNil(t, e)

	pool := []mdoc.Document{sampleDoc(t)}
	query := Query{Credentials: []Credential{
		{ID: "cred-1", Meta: Meta{DoctypeValue: "org.iso.18013.5.1.mDL"}},
	}}

	result, err := e.Evaluate(pool, query)
	require.NoError(t, err)
	assert.Contains(t, result, "cred-1")
}

func TestEvaluator_WithLogger(t *testing.T) {
	e := New(WithLogger(logger.NewSimple("dcql-test")))
	require.NotNil(t, e)

	_, issues := e.ParseQuery(map[string]any{})
	assert.NotEmpty(t, issues)
}

func TestEvaluator_EvaluateCredentialSet(t *testing.T) {
	e := New()
	pool := []mdoc.Document{sampleDoc(t)}
	byID := credentialByID([]Credential{
		{ID: "cred-1", Meta: Meta{DoctypeValue: "org.iso.18013.5.1.mDL"}},
	})
	cs := CredentialSet{Options: [][]string{{"cred-1"}}, Required: true}

	result, err := e.EvaluateCredentialSet(pool, cs, byID)
	require.NoError(t, err)
	assert.Contains(t, result, "cred-1")
}
