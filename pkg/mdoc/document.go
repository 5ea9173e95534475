// Package mdoc models the ISO/IEC 18013-5 mdoc document shape consumed by
// the DCQL evaluator. It is deliberately minimal: CBOR transport framing,
// COSE_Sign1 / MSO signature verification, and digest binding all live
// outside this package's scope and are treated as already-verified when a
// Document reaches the evaluator.
package mdoc

import "github.com/fxamacker/cbor/v2"

// FormatMsoMdoc is the DCQL format discriminator for ISO mdoc credentials.
const FormatMsoMdoc = "mso_mdoc"

// Tag is an opaque, issuer-signed byte string: an IssuerSignedItem still
// wrapped in its CBOR tag-24 encoding. The evaluator copies Tags by
// reference and never re-encodes them, so the issuer's digest binding
// over the original bytes stays intact.
type Tag = cbor.RawMessage

// IssuerSignedItem is the decoded view of a Tag's payload. It is only
// used to read ElementIdentifier/ElementValue during enrichment; the Tag
// itself, not this struct, is what gets carried into filtered output.
type IssuerSignedItem struct {
	DigestID          uint   `cbor:"digestID"`
	Random            []byte `cbor:"random"`
	ElementIdentifier string `cbor:"elementIdentifier"`
	ElementValue      any    `cbor:"elementValue"`
}

// DecodeItem decodes a Tag's payload into an IssuerSignedItem. A CBOR
// tag-24 wrapped map, per ISO 18013-5 §8.3.2.1.2.2, is unwrapped first;
// anything else is decoded directly as a bare item map.
func DecodeItem(tag Tag) (IssuerSignedItem, error) {
	var wrapper cbor.Tag
	if err := cbor.Unmarshal(tag, &wrapper); err == nil {
		if content, ok := wrapper.Content.([]byte); ok {
			var item IssuerSignedItem
			if err := cbor.Unmarshal(content, &item); err != nil {
				return IssuerSignedItem{}, err
			}
			return item, nil
		}
	}

	var item IssuerSignedItem
	if err := cbor.Unmarshal(tag, &item); err != nil {
		return IssuerSignedItem{}, err
	}
	return item, nil
}

// IssuerSigned carries the namespace-organized, issuer-signed data
// elements of a document plus the opaque signature structure covering
// them.
type IssuerSigned struct {
	// NameSpaces maps a namespace (e.g. "org.iso.18013.5.1") to its
	// ordered list of signed item tags. A nil map is distinct from an
	// absent IssuerSigned: the document selector checks presence of
	// IssuerSigned and of NameSpaces independently.
	NameSpaces map[string][]Tag

	// IssuerAuth is the opaque COSE_Sign1 structure (MSO + signature).
	// The evaluator never inspects it beyond checking presence.
	IssuerAuth []byte
}

// Document is one mdoc document as held by a wallet. DocType and
// IssuerSigned each carry a presence flag alongside their value so the
// evaluator can distinguish "absent" from "present but empty", which
// its error taxonomy depends on.
type Document struct {
	DocType         string
	HasDocType      bool
	IssuerSigned    IssuerSigned
	HasIssuerSigned bool
}

// NewDocument constructs a well-formed Document with DocType and
// IssuerSigned both present.
func NewDocument(docType string, issuerSigned IssuerSigned) Document {
	return Document{
		DocType:         docType,
		HasDocType:      true,
		IssuerSigned:    issuerSigned,
		HasIssuerSigned: true,
	}
}

// HasIssuerAuth reports whether the document's IssuerSigned carries a
// non-empty IssuerAuth structure.
func (d Document) HasIssuerAuth() bool {
	return d.HasIssuerSigned && len(d.IssuerSigned.IssuerAuth) > 0
}

// HasNameSpaces reports whether the document's IssuerSigned carries a
// non-nil NameSpaces map. A present-but-empty map still counts as
// present: absence and emptiness are different conditions for the
// document selector.
func (d Document) HasNameSpaces() bool {
	return d.HasIssuerSigned && d.IssuerSigned.NameSpaces != nil
}

// WithNameSpaces returns a copy of d whose IssuerSigned carries the given
// namespaces map, sharing the same IssuerAuth. Used by the document
// selector to build filtered output without touching tag bytes.
func (d Document) WithNameSpaces(nameSpaces map[string][]Tag) Document {
	out := d
	out.IssuerSigned = IssuerSigned{
		NameSpaces: nameSpaces,
		IssuerAuth: d.IssuerSigned.IssuerAuth,
	}
	out.HasIssuerSigned = true
	return out
}
