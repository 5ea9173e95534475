package dcql

import "dcql/pkg/mdoc"

// SelectedNamespaces maps a namespace to the ordered tags retained for
// it, in the order the claims that resolved into that namespace were
// evaluated — not the order tags appeared in the source.
type SelectedNamespaces map[string][]mdoc.Tag

func appendSelected(out SelectedNamespaces, order *[]string, namespace string, tag mdoc.Tag) {
	if _, ok := out[namespace]; !ok {
		*order = append(*order, namespace)
	}
	out[namespace] = append(out[namespace], tag)
}

// selectByClaims runs one ordered list of claims against the enriched
// namespaces of a document, with no claim-set fallback.
func selectByClaims(enriched map[string]EnrichedNamespace, claims []Claim) (SelectedNamespaces, error) {
	out := make(SelectedNamespaces)
	var order []string

	for _, claim := range claims {
		if claim.Namespace == "" || claim.ElementIdentifier == "" {
			return nil, ErrClaimPathInvalid(0)
		}

		ns, ok := enriched[claim.Namespace]
		if !ok {
			return nil, ErrClaimNameSpaceMissing(claim.Namespace)
		}

		tag, err := SelectTag(claim.ElementIdentifier, claim.Values, ns)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			return nil, ErrClaimDataElementMissing(claim.Namespace, claim.ElementIdentifier)
		}

		appendSelected(out, &order, claim.Namespace, tag)
	}

	return orderNamespaces(out, order), nil
}

func orderNamespaces(out SelectedNamespaces, order []string) SelectedNamespaces {
	ordered := make(SelectedNamespaces, len(out))
	for _, ns := range order {
		ordered[ns] = out[ns]
	}
	return ordered
}

// isFallbackEligible reports whether err should make the caller try the
// next claim set rather than fail outright.
func isFallbackEligible(err error) bool {
	evalErr, ok := err.(*EvalError)
	if !ok {
		return false
	}
	switch evalErr.Code {
	case CodeClaimNameSpaceMissing, CodeClaimDataElementMissing, CodeClaimPathInvalid:
		return true
	default:
		return false
	}
}

// selectByClaimSets runs each claim set in order, returning the first
// one that fully resolves. A claim set that fails for a fallback-
// eligible reason is skipped; any other error aborts immediately.
// Unresolvable claim-set ids are a logic bug the schema layer should
// already have caught.
func selectByClaimSets(enriched map[string]EnrichedNamespace, claims []Claim, claimSets []ClaimSet) (SelectedNamespaces, error) {
	byID := claimsByID(claims)

	for _, set := range claimSets {
		resolved := make([]Claim, 0, len(set))
		for _, id := range set {
			claim, ok := byID[id]
			if !ok {
				return nil, ErrClaimNotFound(id)
			}
			resolved = append(resolved, claim)
		}

		result, err := selectByClaims(enriched, resolved)
		if err == nil {
			return result, nil
		}
		if isFallbackEligible(err) {
			continue
		}
		return nil, err
	}

	return nil, nil
}

// SelectNamespaces is the unified namespace selector: it dispatches on
// presence of claims/claim_sets, enriches every namespace once claims
// are present (before any claim is evaluated), and applies the
// no-match-vs-propagate wrapping policy around selectByClaims and
// selectByClaimSets.
func SelectNamespaces(nameSpaces map[string][]mdoc.Tag, claims []Claim, claimSets []ClaimSet) (SelectedNamespaces, error) {
	if len(claims) == 0 {
		if len(claimSets) == 0 {
			return SelectedNamespaces{}, nil
		}
		return nil, ErrClaimSetsPresentWhenClaimsAbsent()
	}

	enriched, err := EnrichNamespaces(nameSpaces)
	if err != nil {
		return nil, ErrIssuerNameSpacesSelectionFailed(err)
	}

	var result SelectedNamespaces
	if len(claimSets) == 0 {
		result, err = selectByClaims(enriched, claims)
	} else {
		result, err = selectByClaimSets(enriched, claims, claimSets)
	}

	if err == nil {
		return result, nil
	}
	if isNoMatch(err) {
		return nil, nil
	}
	return nil, ErrIssuerNameSpacesSelectionFailed(err)
}
