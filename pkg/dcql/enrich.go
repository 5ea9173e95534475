package dcql

import (
	"sort"

	"dcql/pkg/mdoc"
)

// NormalItem is a non-age-over data element available for selection.
type NormalItem struct {
	ElementIdentifier string
	ElementValue      any
	Tag               mdoc.Tag
}

// AgeOverItem is an age_over_NN data element, reduced to its parsed
// threshold and tag.
type AgeOverItem struct {
	NN  int
	Tag mdoc.Tag
}

// EnrichedNamespace is the derived view of one namespace's raw tags,
// partitioned into three disjoint, independently ordered buckets.
type EnrichedNamespace struct {
	NormalItems      []NormalItem
	AgeOverTrueItems  []AgeOverItem // sorted ascending by NN
	AgeOverFalseItems []AgeOverItem // sorted descending by NN
}

// Enrich partitions one namespace's ordered tag list into normal items
// (order preserved) and the two age-over buckets (sorted). A tag whose
// identifier matches age_over_NN but whose value is neither boolean
// true nor false is dropped from every bucket.
func Enrich(tags []mdoc.Tag) (EnrichedNamespace, error) {
	var out EnrichedNamespace
	var trueItems, falseItems []AgeOverItem

	for _, tag := range tags {
		item, err := mdoc.DecodeItem(tag)
		if err != nil {
			return EnrichedNamespace{}, err
		}

		nn, ageErr := parseAgeOver(item.ElementIdentifier)
		if ageErr != nil {
			out.NormalItems = append(out.NormalItems, NormalItem{
				ElementIdentifier: item.ElementIdentifier,
				ElementValue:      item.ElementValue,
				Tag:               tag,
			})
			continue
		}

		b, ok := isBool(item.ElementValue)
		if !ok {
			continue
		}
		if b {
			trueItems = append(trueItems, AgeOverItem{NN: nn, Tag: tag})
		} else {
			falseItems = append(falseItems, AgeOverItem{NN: nn, Tag: tag})
		}
	}

	sort.SliceStable(trueItems, func(i, j int) bool { return trueItems[i].NN < trueItems[j].NN })
	sort.SliceStable(falseItems, func(i, j int) bool { return falseItems[i].NN > falseItems[j].NN })

	out.AgeOverTrueItems = trueItems
	out.AgeOverFalseItems = falseItems
	return out, nil
}

// EnrichNamespaces enriches every namespace in nameSpaces independently.
func EnrichNamespaces(nameSpaces map[string][]mdoc.Tag) (map[string]EnrichedNamespace, error) {
	out := make(map[string]EnrichedNamespace, len(nameSpaces))
	for ns, tags := range nameSpaces {
		enriched, err := Enrich(tags)
		if err != nil {
			return nil, err
		}
		out[ns] = enriched
	}
	return out, nil
}
