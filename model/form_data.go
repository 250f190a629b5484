package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FormField is one rendered form entry: the field name as label, the value
// already coerced to a string.
type FormField struct {
	Name  string
	Value string
}

// FormData is the ordered set of form fields from a submission. A plain map
// would lose the request body's key order, so decoding walks the JSON object
// token by token.
type FormData []FormField

// UnmarshalJSON decodes a JSON object into fields in document order.
// Primitive values become their string representation; anything nested is
// kept as compact JSON so a sloppy caller still gets a readable field.
func (f *FormData) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*f = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("formData: expected object, got %v", tok)
	}

	fields := FormData{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("formData: unexpected key token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}

		fields = append(fields, FormField{Name: key, Value: stringifyFormValue(value)})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = fields
	return nil
}

func stringifyFormValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
