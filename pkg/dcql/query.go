package dcql

import "dcql/pkg/mdoc"

// Evaluate is the top-level entry point: given a document pool and a
// schema-valid Query, it decides which documents satisfy the query and
// returns the filtered results keyed by credential id.
//
// A nil result with a nil error means the query is unsatisfied (only
// possible when credential_sets is absent). A non-nil *EvalError means
// a required credential set could not be satisfied, or a structural
// problem was found while examining a document.
func Evaluate(pool []mdoc.Document, query Query) (CredentialResults, error) {
	if len(query.CredentialSets) == 0 {
		return SelectCredentials(pool, query.Credentials)
	}

	byID := credentialByID(query.Credentials)
	result := make(CredentialResults)

	for _, cs := range query.CredentialSets {
		setResult, err := SelectCredentialSet(pool, cs, byID)
		if err != nil {
			return nil, err
		}
		for id, docs := range setResult {
			result[id] = docs
		}
	}

	return result, nil
}
