package dcql

import (
	"fmt"

	"dcql/pkg/mdoc"
)

// Path identifies the location of a schema Issue within the input
// document. Each segment is either a string (object key) or an int
// (array index), mirroring a JSON Pointer without the string encoding.
type Path []any

func (p Path) with(seg any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Issue is a single schema validation failure: where it occurred and
// why.
type Issue struct {
	Path    Path
	Message string
}

// IssueList is the structured failure payload of the schema channel. It
// is never wrapped in a Go error on its own — ParseQuery returns it
// directly as a second value, an Ok/Err tagged union in everything but
// name.
type IssueList []Issue

func (l IssueList) Error() string {
	if len(l) == 0 {
		return "no schema issues"
	}
	return fmt.Sprintf("%d schema issue(s); first: %q at %v", len(l), l[0].Message, l[0].Path)
}

// The following primitives form a small declarative schema description
// library: reusable structural checks that ParseQuery and its helpers
// compose, in place of a fluent validation-library DSL. Each check
// reports at most one Issue, located at the path the caller supplies.

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

func checkObject(value any, path Path) (map[string]any, *Issue) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, &Issue{path, fmt.Sprintf("Expected object, received %s", typeName(value))}
	}
	return m, nil
}

func checkArray(value any, path Path) ([]any, *Issue) {
	a, ok := value.([]any)
	if !ok {
		return nil, &Issue{path, fmt.Sprintf("Expected array, received %s", typeName(value))}
	}
	return a, nil
}

func checkString(value any, path Path) (string, *Issue) {
	s, ok := value.(string)
	if !ok {
		return "", &Issue{path, fmt.Sprintf("Expected string, received %s", typeName(value))}
	}
	return s, nil
}

func checkBool(value any, path Path) (bool, *Issue) {
	b, ok := value.(bool)
	if !ok {
		return false, &Issue{path, fmt.Sprintf("Expected boolean, received %s", typeName(value))}
	}
	return b, nil
}

func checkNonEmptyString(value any, path Path) (string, *Issue) {
	s, issue := checkString(value, path)
	if issue != nil {
		return "", issue
	}
	if s == "" {
		return "", &Issue{path, "String must contain at least 1 character(s)"}
	}
	return s, nil
}

func checkMinArray(arr []any, path Path, min int) *Issue {
	if len(arr) < min {
		return &Issue{path, fmt.Sprintf("Array must contain at least %d element(s)", min)}
	}
	return nil
}

func checkMaxArray(arr []any, path Path, max int) *Issue {
	if len(arr) > max {
		return &Issue{path, fmt.Sprintf("Array must contain at most %d element(s)", max)}
	}
	return nil
}

// checkNonNegativeInt validates a required-integer, non-negative-number
// field. No field in the current credential-query entity model needs
// it, but it is part of this validator's declared message contract and
// is covered directly by schema_test.go.
func checkNonNegativeInt(value any, path Path) (int, *Issue) {
	f, ok := value.(float64)
	if !ok {
		return 0, &Issue{path, fmt.Sprintf("Expected number, received %s", typeName(value))}
	}
	if f != float64(int(f)) {
		return 0, &Issue{path, "Expected integer, received float"}
	}
	if f < 0 {
		return 0, &Issue{path, "Number must be greater than or equal to 0"}
	}
	return int(f), nil
}

func getRequired(obj map[string]any, key string, path Path) (any, *Issue) {
	v, ok := obj[key]
	if !ok {
		return nil, &Issue{path.with(key), "Required"}
	}
	return v, nil
}

func isScalarValue(v any) bool {
	switch v.(type) {
	case nil, string, float64, bool:
		return true
	default:
		return false
	}
}

// ParseQuery validates raw (the result of decoding untrusted DCQL JSON
// into Go's generic `any` representation — maps, slices, strings,
// float64, bool, nil) and returns either a fully-typed Query or the
// complete list of violations found. No panics: every failure mode is
// reported as an Issue.
func ParseQuery(raw any) (*Query, IssueList) {
	var issues IssueList
	root := Path{}

	obj, issue := checkObject(raw, root)
	if issue != nil {
		return nil, IssueList{*issue}
	}

	var query Query

	credsRaw, iss := getRequired(obj, "credentials", root)
	if iss != nil {
		issues = append(issues, *iss)
	} else if arr, iss2 := checkArray(credsRaw, root.with("credentials")); iss2 != nil {
		issues = append(issues, *iss2)
	} else {
		if minIssue := checkMinArray(arr, root.with("credentials"), 1); minIssue != nil {
			issues = append(issues, *minIssue)
		}
		for i, item := range arr {
			cred, credIssues := parseCredential(item, root.with("credentials").with(i))
			issues = append(issues, credIssues...)
			if cred != nil {
				query.Credentials = append(query.Credentials, *cred)
			}
		}
	}

	if csRaw, ok := obj["credential_sets"]; ok {
		arr, iss2 := checkArray(csRaw, root.with("credential_sets"))
		if iss2 != nil {
			issues = append(issues, *iss2)
		} else {
			if minIssue := checkMinArray(arr, root.with("credential_sets"), 1); minIssue != nil {
				issues = append(issues, *minIssue)
			}
			for i, item := range arr {
				cs, csIssues := parseCredentialSet(item, root.with("credential_sets").with(i))
				issues = append(issues, csIssues...)
				if cs != nil {
					query.CredentialSets = append(query.CredentialSets, *cs)
				}
			}
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return &query, nil
}

type claimSetRef struct {
	valid             bool
	id                string
	setIndex, idIndex int
}

func parseCredential(raw any, path Path) (*Credential, IssueList) {
	var issues IssueList
	obj, issue := checkObject(raw, path)
	if issue != nil {
		return nil, IssueList{*issue}
	}

	cred := &Credential{}

	if v, iss := getRequired(obj, "id", path); iss != nil {
		issues = append(issues, *iss)
	} else if s, iss2 := checkNonEmptyString(v, path.with("id")); iss2 != nil {
		issues = append(issues, *iss2)
	} else {
		cred.ID = s
	}

	if v, iss := getRequired(obj, "format", path); iss != nil {
		issues = append(issues, *iss)
	} else if s, iss2 := checkString(v, path.with("format")); iss2 != nil {
		issues = append(issues, *iss2)
	} else if s != mdoc.FormatMsoMdoc {
		issues = append(issues, Issue{path.with("format"), `Invalid literal value, expected "mso_mdoc"`})
	} else {
		cred.Format = s
	}

	if v, iss := getRequired(obj, "meta", path); iss != nil {
		issues = append(issues, *iss)
	} else if metaObj, iss2 := checkObject(v, path.with("meta")); iss2 != nil {
		issues = append(issues, *iss2)
	} else if dv, iss3 := getRequired(metaObj, "doctype_value", path.with("meta")); iss3 != nil {
		issues = append(issues, *iss3)
	} else if s, iss4 := checkNonEmptyString(dv, path.with("meta").with("doctype_value")); iss4 != nil {
		issues = append(issues, *iss4)
	} else {
		cred.Meta.DoctypeValue = s
	}

	claimsPresent := false
	claimIDsSeen := map[string]bool{}
	if v, ok := obj["claims"]; ok {
		claimsPresent = true
		arr, iss2 := checkArray(v, path.with("claims"))
		if iss2 != nil {
			issues = append(issues, *iss2)
		} else {
			if minIssue := checkMinArray(arr, path.with("claims"), 1); minIssue != nil {
				issues = append(issues, *minIssue)
			}
			for i, item := range arr {
				claim, claimIssues := parseClaim(item, path.with("claims").with(i))
				issues = append(issues, claimIssues...)
				if claim != nil {
					cred.Claims = append(cred.Claims, *claim)
					if claim.ID != "" {
						claimIDsSeen[claim.ID] = true
					}
				}
			}
		}
	}

	claimSetsPresent := false
	var refs []claimSetRef
	if v, ok := obj["claim_sets"]; ok {
		claimSetsPresent = true
		arr, iss2 := checkArray(v, path.with("claim_sets"))
		if iss2 != nil {
			issues = append(issues, *iss2)
		} else {
			if minIssue := checkMinArray(arr, path.with("claim_sets"), 1); minIssue != nil {
				issues = append(issues, *minIssue)
			}
			for i, item := range arr {
				setPath := path.with("claim_sets").with(i)
				inner, iss3 := checkArray(item, setPath)
				if iss3 != nil {
					issues = append(issues, *iss3)
					continue
				}
				if minIssue := checkMinArray(inner, setPath, 1); minIssue != nil {
					issues = append(issues, *minIssue)
				}
				var set ClaimSet
				for j, idRaw := range inner {
					s, iss4 := checkNonEmptyString(idRaw, setPath.with(j))
					if iss4 != nil {
						issues = append(issues, *iss4)
						refs = append(refs, claimSetRef{valid: false})
						continue
					}
					set = append(set, s)
					refs = append(refs, claimSetRef{valid: true, id: s, setIndex: i, idIndex: j})
				}
				cred.ClaimSets = append(cred.ClaimSets, set)
			}
		}
	}

	// Cross-field refinement, applied after element validation. Runs
	// even when claim_sets carried its own structural issues.
	if claimSetsPresent && !claimsPresent {
		issues = append(issues, Issue{path.with("claim_sets"), "claim_sets MUST NOT be present if claims is absent."})
	}
	if claimSetsPresent && claimsPresent {
		for _, ref := range refs {
			if !ref.valid {
				continue
			}
			if !claimIDsSeen[ref.id] {
				issues = append(issues, Issue{
					path.with("claim_sets").with(ref.setIndex).with(ref.idIndex),
					fmt.Sprintf("Claim ID %q referenced in claim_sets[%d][%d] does not exist in claims array", ref.id, ref.setIndex, ref.idIndex),
				})
			}
		}
	}

	cred.Multiple = false
	if v, ok := obj["multiple"]; ok {
		b, iss := checkBool(v, path.with("multiple"))
		if iss != nil {
			issues = append(issues, *iss)
		} else {
			cred.Multiple = b
		}
	}

	return cred, issues
}

func parseClaim(raw any, path Path) (*Claim, IssueList) {
	var issues IssueList
	obj, issue := checkObject(raw, path)
	if issue != nil {
		return nil, IssueList{*issue}
	}

	claim := &Claim{}

	if v, ok := obj["id"]; ok {
		s, iss := checkNonEmptyString(v, path.with("id"))
		if iss != nil {
			issues = append(issues, *iss)
		} else {
			claim.ID = s
		}
	}

	if v, iss := getRequired(obj, "path", path); iss != nil {
		issues = append(issues, *iss)
	} else if arr, iss2 := checkArray(v, path.with("path")); iss2 != nil {
		issues = append(issues, *iss2)
	} else if len(arr) < 2 {
		issues = append(issues, Issue{path.with("path"), "Array must contain at least 2 element(s)"})
	} else if len(arr) > 2 {
		issues = append(issues, Issue{path.with("path"), "Array must contain at most 2 element(s)"})
	} else {
		if ns, iss3 := checkNonEmptyString(arr[0], path.with("path").with(0)); iss3 != nil {
			issues = append(issues, *iss3)
		} else {
			claim.Namespace = ns
		}
		if el, iss4 := checkNonEmptyString(arr[1], path.with("path").with(1)); iss4 != nil {
			issues = append(issues, *iss4)
		} else {
			claim.ElementIdentifier = el
		}
	}

	if v, ok := obj["values"]; ok {
		arr, iss := checkArray(v, path.with("values"))
		if iss != nil {
			issues = append(issues, *iss)
		} else {
			if minIssue := checkMinArray(arr, path.with("values"), 1); minIssue != nil {
				issues = append(issues, *minIssue)
			}
			for i, item := range arr {
				if !isScalarValue(item) {
					issues = append(issues, Issue{path.with("values").with(i), fmt.Sprintf("Expected string, number, boolean or null, received %s", typeName(item))})
					continue
				}
				claim.Values = append(claim.Values, item)
			}
		}
	}

	if v, ok := obj["intent_to_retain"]; ok {
		b, iss := checkBool(v, path.with("intent_to_retain"))
		if iss != nil {
			issues = append(issues, *iss)
		} else {
			claim.IntentToRetain = b
		}
	}

	return claim, issues
}

func parseCredentialSet(raw any, path Path) (*CredentialSet, IssueList) {
	var issues IssueList
	obj, issue := checkObject(raw, path)
	if issue != nil {
		return nil, IssueList{*issue}
	}

	cs := &CredentialSet{Required: true}

	if v, iss := getRequired(obj, "options", path); iss != nil {
		issues = append(issues, *iss)
	} else if arr, iss2 := checkArray(v, path.with("options")); iss2 != nil {
		issues = append(issues, *iss2)
	} else {
		if minIssue := checkMinArray(arr, path.with("options"), 1); minIssue != nil {
			issues = append(issues, *minIssue)
		}
		for i, item := range arr {
			optPath := path.with("options").with(i)
			inner, iss3 := checkArray(item, optPath)
			if iss3 != nil {
				issues = append(issues, *iss3)
				continue
			}
			if minIssue := checkMinArray(inner, optPath, 1); minIssue != nil {
				issues = append(issues, *minIssue)
			}
			var opt []string
			for j, idRaw := range inner {
				s, iss4 := checkNonEmptyString(idRaw, optPath.with(j))
				if iss4 != nil {
					issues = append(issues, *iss4)
					continue
				}
				opt = append(opt, s)
			}
			cs.Options = append(cs.Options, opt)
		}
	}

	if v, ok := obj["required"]; ok {
		b, iss := checkBool(v, path.with("required"))
		if iss != nil {
			issues = append(issues, *iss)
		} else {
			cs.Required = b
		}
	}

	return cs, issues
}
