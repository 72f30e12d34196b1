package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DefaultLanguage is the language tag used when no other preference applies.
const DefaultLanguage = "pt-BR"

// MultiLanguageContent maps a language tag to the display string for that
// language. Keys are free-form tags; the map may be empty.
type MultiLanguageContent map[string]string

// UnmarshalJSON accepts either a language map or a bare string. Bare strings
// occur in hand-authored html content and are normalised to an entry under
// DefaultLanguage.
func (m *MultiLanguageContent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = MultiLanguageContent{DefaultLanguage: s}
		return nil
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("multilanguage content must be a string or a language map: %w", err)
	}
	*m = MultiLanguageContent(raw)
	return nil
}

// UnmarshalBSONValue mirrors UnmarshalJSON for documents read back from the
// database, where the same string-or-map duality exists.
func (m *MultiLanguageContent) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*m = nil
		return nil
	case bson.TypeString:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*m = MultiLanguageContent{DefaultLanguage: s}
		return nil
	case bson.TypeEmbeddedDocument:
		var raw map[string]string
		if err := bson.UnmarshalValue(t, data, &raw); err != nil {
			return err
		}
		*m = MultiLanguageContent(raw)
		return nil
	default:
		return fmt.Errorf("cannot decode %v into multilanguage content", t)
	}
}
