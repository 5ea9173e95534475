package dcql

import "github.com/moogar0880/problems"

// logicBugCodes are codes the schema layer should already have made
// unreachable; if the evaluator hits one anyway, it's a server defect
// rather than a client-supplied bad query.
var logicBugCodes = map[int]bool{
	CodeClaimSetsPresentWhenClaimsAbsent: true,
	CodeIssuerNameSpacesSelectionFailed:  true,
	CodeCredentialNotFound:               true,
	CodeClaimNotFound:                    true,
}

// Problem adapts an *EvalError into an RFC 7807 problem detail, the
// same adaptation this codebase family uses at its HTTP boundaries.
// The core evaluator never calls this itself; it is exposed for
// transport-facing callers such as cmd/dcqlcheck.
func Problem(err *EvalError) *problems.Problem {
	status := 422
	if logicBugCodes[err.Code] {
		status = 500
	}

	p := problems.NewStatusProblem(status)
	p.Title = err.Symbolic
	p.Detail = err.Reason
	return p
}
