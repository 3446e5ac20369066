// ABOUTME: JSON wire codec for catalogs: a top-level array of theme records
// ABOUTME: Backed by the easyjson-generated marshalers in theme_easyjson.go

package theme

//go:generate easyjson -all -output_filename theme_easyjson.go theme.go

import (
	"fmt"

	"github.com/mailru/easyjson"
)

// DecodeCatalog parses a JSON array of theme records.
// Unknown fields are ignored; a JSON null decodes to an empty catalog.
func DecodeCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := easyjson.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding theme catalog: %w", err)
	}
	return c, nil
}

// EncodeCatalog renders c as a JSON array. A nil catalog encodes as [].
func EncodeCatalog(c Catalog) ([]byte, error) {
	if c == nil {
		c = Catalog{}
	}
	return easyjson.Marshal(c)
}
