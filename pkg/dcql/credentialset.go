package dcql

import (
	"encoding/json"

	"dcql/pkg/mdoc"
)

// SelectCredentialSet runs first-match-over-options: each option's
// credential-id list is resolved against byID and evaluated with
// SelectCredentials; the first option that fully matches the pool
// wins.
//
// Resolving a credential id the lookup doesn't know about is treated
// as a logic bug the schema layer should already have prevented, and
// aborts immediately. Any other error raised while evaluating an
// option's credentials — including a structural error inside one of
// its documents — is swallowed and treated as that option failing,
// matching the reference evaluator's broad catch at this layer.
func SelectCredentialSet(pool []mdoc.Document, cs CredentialSet, byID map[string]Credential) (CredentialResults, error) {
	for _, option := range cs.Options {
		creds := make([]Credential, 0, len(option))
		missing := ""
		for _, id := range option {
			cred, ok := byID[id]
			if !ok {
				missing = id
				break
			}
			creds = append(creds, cred)
		}
		if missing != "" {
			return nil, ErrCredentialNotFound(missing)
		}

		result, err := SelectCredentials(pool, creds)
		if err != nil {
			continue
		}
		if result != nil {
			return result, nil
		}
	}

	if cs.Required {
		optionsJSON, marshalErr := json.Marshal(cs.Options)
		if marshalErr != nil {
			optionsJSON = []byte("[]")
		}
		return nil, ErrRequiredCredentialSetUnsatisfied(string(optionsJSON))
	}
	return nil, nil
}
