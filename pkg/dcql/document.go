package dcql

import "dcql/pkg/mdoc"

// SelectDocument applies one credential's constraints to one document,
// returning the filtered document, or (nil, nil) when the document is
// simply not for this credential (a docType mismatch or no satisfying
// namespace selection) — never an error in that case.
func SelectDocument(doc mdoc.Document, cred Credential) (*mdoc.Document, error) {
	if !doc.HasDocType {
		return nil, ErrDocTypeMissing()
	}
	if doc.DocType != cred.Meta.DoctypeValue {
		return nil, nil
	}
	if !doc.HasIssuerSigned {
		return nil, ErrIssuerSignedMissing()
	}
	if !doc.HasIssuerAuth() {
		return nil, ErrIssuerAuthMissing()
	}

	if len(cred.Claims) == 0 {
		filtered := doc.WithNameSpaces(map[string][]mdoc.Tag{})
		return &filtered, nil
	}

	if !doc.HasNameSpaces() {
		return nil, ErrIssuerNameSpacesMissing()
	}

	selected, err := SelectNamespaces(doc.IssuerSigned.NameSpaces, cred.Claims, cred.ClaimSets)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, nil
	}

	filtered := doc.WithNameSpaces(map[string][]mdoc.Tag(selected))
	return &filtered, nil
}
