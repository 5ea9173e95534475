package dcql

import "dcql/pkg/mdoc"

// SelectCredential runs SelectDocument over a document pool for one
// credential, in pool order. It stops at the first hit unless the
// credential allows multiple matches.
func SelectCredential(pool []mdoc.Document, cred Credential) ([]mdoc.Document, error) {
	var matches []mdoc.Document
	for _, doc := range pool {
		filtered, err := SelectDocument(doc, cred)
		if err != nil {
			return nil, err
		}
		if filtered == nil {
			continue
		}
		matches = append(matches, *filtered)
		if !cred.Multiple {
			break
		}
	}
	return matches, nil
}

// CredentialResults maps a credential's id to its matched documents.
type CredentialResults map[string][]mdoc.Document

// SelectCredentials runs SelectCredential for every credential in
// order. If any credential has zero matches, the whole query is
// unsatisfied and SelectCredentials returns (nil, nil).
func SelectCredentials(pool []mdoc.Document, creds []Credential) (CredentialResults, error) {
	out := make(CredentialResults, len(creds))
	for _, cred := range creds {
		matches, err := SelectCredential(pool, cred)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, nil
		}
		out[cred.ID] = matches
	}
	return out, nil
}
