package dcql

import "dcql/pkg/mdoc"

// SelectTag picks the single tag that best satisfies a requested data
// element against one namespace's enriched view, or reports no match
// by returning a nil tag and a nil error. It is the only place where
// age_over_NN's best-match semantics are applied.
func SelectTag(requestedIdentifier string, requestedValues []Value, ns EnrichedNamespace) (mdoc.Tag, error) {
	if !isAgeOverIdentifier(requestedIdentifier) {
		return selectNormalTag(requestedIdentifier, requestedValues, ns.NormalItems)
	}

	nn, err := parseAgeOver(requestedIdentifier)
	if err != nil {
		return nil, err
	}
	return selectAgeOverTag(nn, requestedValues, ns.AgeOverTrueItems, ns.AgeOverFalseItems)
}

func selectNormalTag(requestedIdentifier string, requestedValues []Value, items []NormalItem) (mdoc.Tag, error) {
	for _, item := range items {
		if item.ElementIdentifier != requestedIdentifier {
			continue
		}
		if len(requestedValues) == 0 {
			return item.Tag, nil
		}
		for _, v := range requestedValues {
			if equalValue(item.ElementValue, v) {
				return item.Tag, nil
			}
		}
		return nil, nil
	}
	return nil, nil
}

func selectAgeOverTag(requestedNn int, requestedValues []Value, trueItems, falseItems []AgeOverItem) (mdoc.Tag, error) {
	if len(requestedValues) == 0 {
		for _, item := range trueItems {
			if item.NN >= requestedNn {
				return item.Tag, nil
			}
		}
		for _, item := range falseItems {
			if item.NN <= requestedNn {
				return item.Tag, nil
			}
		}
		return nil, nil
	}

	if len(requestedValues) != 1 {
		return nil, ErrInvalidAgeOverRequestedValues()
	}
	wanted, ok := isBool(requestedValues[0])
	if !ok {
		return nil, ErrInvalidAgeOverRequestedValues()
	}

	if wanted {
		for _, item := range trueItems {
			if item.NN == requestedNn {
				return item.Tag, nil
			}
		}
		return nil, nil
	}
	for _, item := range falseItems {
		if item.NN == requestedNn {
			return item.Tag, nil
		}
	}
	return nil, nil
}
