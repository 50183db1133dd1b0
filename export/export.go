// Package export converts recipes to plain data formats for tools that do
// not read KDL: YAML, JSON and CBOR.
//
// All three formats share one document shape:
//
//	recipes:
//	  - name: pancakes
//	    tags: [breakfast]
//	    ingredients:
//	      - names: [{name: Flour, kind: All-Purpose}]
//	        measurements: [{quantity: 2, unit: cup}]
//	    instructions:
//	      - description: Whisk.
//	    source: {kind: url, value: "https://example.com/pancakes"}
//
// CBOR output uses Core Deterministic Encoding, so equal recipes always
// produce identical bytes.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-recipe"
)

// Format names an export encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	CBOR Format = "cbor"
)

// Formats lists the supported formats.
var Formats = []Format{YAML, JSON, CBOR}

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("export: unknown format")

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
}

// ParseFormat returns the format named s. Case is ignored.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Item is a recipe together with the name of the node it was read from.
type Item struct {
	Name   string
	Recipe recipe.Recipe
}

// Marshal encodes items in format f.
//
// JSON cannot represent infinite or NaN quantities; exporting one as JSON
// fails with a *json.UnsupportedValueError.
func Marshal(f Format, items ...Item) ([]byte, error) {
	doc := newDocument(items)
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("export: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("export: yaml: %w", err)
		}
		return buf.Bytes(), nil
	case JSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("export: json: %w", err)
		}
		return append(data, '\n'), nil
	case CBOR:
		data, err := encMode.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("export: cbor: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}
