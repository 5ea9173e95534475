package dcql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblem_ClientErrorStatus(t *testing.T) {
	p := Problem(ErrDocTypeMissing())
	assert.Equal(t, 422, p.Status)
	assert.Equal(t, "DocTypeMissing", p.Title)
}

func TestProblem_LogicBugStatus(t *testing.T) {
	p := Problem(ErrClaimSetsPresentWhenClaimsAbsent())
	assert.Equal(t, 500, p.Status)
}
