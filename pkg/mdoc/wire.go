package mdoc

import "encoding/json"

// The JSON wire shapes below exist only for the demo CLI boundary
// (cmd/dcqlcheck): a document pool read from a file on disk. Tags
// travel as base64 strings, the JSON encoding Go already gives []byte.
// Internally the evaluator never serializes a Document; it is built
// directly by whatever collaborator parses the real wallet storage
// format.

type issuerSignedWire struct {
	NameSpaces map[string][]Tag `json:"nameSpaces"`
	IssuerAuth []byte           `json:"issuerAuth,omitempty"`
}

type documentWire struct {
	DocType      *string           `json:"docType,omitempty"`
	IssuerSigned *issuerSignedWire `json:"issuerSigned,omitempty"`
}

// UnmarshalJSON decodes a Document, distinguishing an absent field from
// a present-but-empty one the same way the rest of this package does.
func (d *Document) UnmarshalJSON(data []byte) error {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*d = Document{}
	if w.DocType != nil {
		d.DocType = *w.DocType
		d.HasDocType = true
	}
	if w.IssuerSigned != nil {
		d.HasIssuerSigned = true
		d.IssuerSigned = IssuerSigned{
			NameSpaces: w.IssuerSigned.NameSpaces,
			IssuerAuth: w.IssuerSigned.IssuerAuth,
		}
	}
	return nil
}

// MarshalJSON encodes a Document back to its wire shape, omitting
// fields the presence flags mark as absent.
func (d Document) MarshalJSON() ([]byte, error) {
	var w documentWire
	if d.HasDocType {
		w.DocType = &d.DocType
	}
	if d.HasIssuerSigned {
		w.IssuerSigned = &issuerSignedWire{
			NameSpaces: d.IssuerSigned.NameSpaces,
			IssuerAuth: d.IssuerSigned.IssuerAuth,
		}
	}
	return json.Marshal(w)
}
