package dcql

import "fmt"

// Evaluation error codes. A handful keep fixed numbers for wire
// compatibility with callers that already branch on them; the rest
// fill the surrounding range — see DESIGN.md for the numbering
// decision.
const (
	CodeClaimPathInvalid                 = 2001
	CodeClaimNameSpaceMissing            = 2002
	CodeClaimDataElementMissing          = 2003
	CodeInvalidAgeOverFormat             = 2004
	CodeInvalidAgeOverRequestedValues    = 2005
	CodeIssuerNameSpacesMissing          = 2006
	CodeIssuerAuthMissing                = 2007
	CodeRequiredCredentialSetUnsatisfied = 2008
	CodeCredentialNotFound               = 2009
	CodeClaimNotFound                    = 2010
	CodeDocTypeMissing                   = 2015
	CodeIssuerSignedMissing              = 2016
	CodeClaimSetsPresentWhenClaimsAbsent = 2017
	CodeIssuerNameSpacesSelectionFailed  = 2018
)

// EvalError is the evaluation channel's error type: a reason, a
// numeric code and the code's symbolic name, formatted as
// "<reason> - <code> - <symbolic>".
type EvalError struct {
	Code     int
	Symbolic string
	Reason   string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s - %d - %s", e.Reason, e.Code, e.Symbolic)
}

func newEvalError(code int, symbolic, reason string) *EvalError {
	return &EvalError{Code: code, Symbolic: symbolic, Reason: reason}
}

// ErrDocTypeMissing is raised by the document selector when a document
// has no docType field.
func ErrDocTypeMissing() *EvalError {
	return newEvalError(CodeDocTypeMissing, "DocTypeMissing", "The document type is missing.")
}

// ErrIssuerSignedMissing is raised when a document has no issuerSigned.
func ErrIssuerSignedMissing() *EvalError {
	return newEvalError(CodeIssuerSignedMissing, "IssuerSignedMissing", "The issuerSigned structure is missing.")
}

// ErrIssuerAuthMissing is raised when issuerSigned has no issuerAuth.
func ErrIssuerAuthMissing() *EvalError {
	return newEvalError(CodeIssuerAuthMissing, "IssuerAuthMissing", "The issuerAuth structure is missing.")
}

// ErrIssuerNameSpacesMissing is raised when claims are requested but
// nameSpaces is absent from issuerSigned.
func ErrIssuerNameSpacesMissing() *EvalError {
	return newEvalError(CodeIssuerNameSpacesMissing, "IssuerNameSpacesMissing", "The issuerSigned nameSpaces structure is missing.")
}

// ErrClaimPathInvalid is raised when a claim's path does not have
// exactly two elements.
func ErrClaimPathInvalid(pathLen int) *EvalError {
	return newEvalError(CodeClaimPathInvalid, "ClaimPathInvalid", fmt.Sprintf("The claim path must have exactly 2 elements, got %d.", pathLen))
}

// ErrClaimNameSpaceMissing is raised when a claim's requested namespace
// is absent from the document.
func ErrClaimNameSpaceMissing(namespace string) *EvalError {
	return newEvalError(CodeClaimNameSpaceMissing, "ClaimNameSpaceMissing", fmt.Sprintf("The namespace %q is missing from the document.", namespace))
}

// ErrClaimDataElementMissing is raised when no tag satisfies a claim.
func ErrClaimDataElementMissing(namespace, elementIdentifier string) *EvalError {
	return newEvalError(CodeClaimDataElementMissing, "ClaimDataElementMissing", fmt.Sprintf("The data element %q in namespace %q is missing.", elementIdentifier, namespace))
}

// ErrClaimSetsPresentWhenClaimsAbsent is raised when claim_sets was
// given without claims — the schema layer should have rejected this
// already; reaching it at evaluation time is a logic bug.
func ErrClaimSetsPresentWhenClaimsAbsent() *EvalError {
	return newEvalError(CodeClaimSetsPresentWhenClaimsAbsent, "ClaimSetsPresentWhenClaimsAbsent", "claim_sets is present but claims is absent.")
}

// ErrIssuerNameSpacesSelectionFailed wraps an unexpected error from
// namespace selection, embedding the underlying error's message.
func ErrIssuerNameSpacesSelectionFailed(cause error) *EvalError {
	return newEvalError(CodeIssuerNameSpacesSelectionFailed, "IssuerNameSpacesSelectionFailed", fmt.Sprintf("Selecting issuer-signed namespaces failed: %s", cause.Error()))
}

// ErrInvalidAgeOverFormat is raised when an "age_over_" identifier is
// malformed.
func ErrInvalidAgeOverFormat(identifier string) *EvalError {
	return newEvalError(CodeInvalidAgeOverFormat, "InvalidAgeOverFormat", fmt.Sprintf("%q is not a valid age_over_NN identifier.", identifier))
}

// ErrInvalidAgeOverRequestedValues is raised when an age-over claim's
// requested values are not a single-element boolean array.
func ErrInvalidAgeOverRequestedValues() *EvalError {
	return newEvalError(CodeInvalidAgeOverRequestedValues, "InvalidAgeOverRequestedValues", "Age-over claims require a single boolean in values.")
}

// ErrRequiredCredentialSetUnsatisfied is raised when evaluation exhausts
// all options of a required credential set.
func ErrRequiredCredentialSetUnsatisfied(optionsJSON string) *EvalError {
	return newEvalError(CodeRequiredCredentialSetUnsatisfied, "RequiredCredentialSetUnsatisfied", fmt.Sprintf("None of the options %s could be satisfied.", optionsJSON))
}

// ErrCredentialNotFound is raised when a credential-set option
// references a credential id absent from the query's credentials.
func ErrCredentialNotFound(id string) *EvalError {
	return newEvalError(CodeCredentialNotFound, "CredentialNotFound", fmt.Sprintf("Credential with id %s not found", id))
}

// ErrClaimNotFound is raised when a claim set references a claim id
// absent from the credential's claims.
func ErrClaimNotFound(id string) *EvalError {
	return newEvalError(CodeClaimNotFound, "ClaimNotFound", fmt.Sprintf("Claim with id %s not found", id))
}

// isNoMatch reports whether err is one of the errors the namespace
// selector treats as "no match" rather than a structural failure:
// ClaimNameSpaceMissing and ClaimDataElementMissing convert to None;
// everything else (notably ClaimPathInvalid) propagates as a wrapped
// IssuerNameSpacesSelectionFailed.
func isNoMatch(err error) bool {
	evalErr, ok := err.(*EvalError)
	if !ok {
		return false
	}
	switch evalErr.Code {
	case CodeClaimNameSpaceMissing, CodeClaimDataElementMissing:
		return true
	default:
		return false
	}
}
