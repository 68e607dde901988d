package flatregex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MemberFunc is called once per object member, in arrival order. The value
// is the raw JSON of the member; returning an error aborts the walk.
type MemberFunc func(key string, value json.RawMessage) error

// EachMember decodes data as a JSON object and invokes fn for every member
// in input order. Duplicate keys are passed through as-is; callers decide
// whether duplicates are an error. Non-object input yields a *TypeError
// carrying structName.
func EachMember(structName string, data []byte, fn MemberFunc) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", structName, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &TypeError{Struct: structName, Got: tokenString(tok)}
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding %s: %w", structName, err)
		}

		key, ok := keyTok.(string)
		if !ok {
			// Cannot happen for well-formed JSON; the decoder yields
			// object keys as strings.
			return &TypeError{Struct: structName, Got: tokenString(keyTok)}
		}

		// Interleaving Token and Decode is supported by json.Decoder and
		// captures the member value verbatim.
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding %s[%q]: %w", structName, key, err)
		}

		if err := fn(key, value); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding %s: %w", structName, err)
	}

	return nil
}

// IsNull reports whether data is the JSON null literal, the conventional
// no-op input for UnmarshalJSON implementations.
func IsNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// tokenString renders a decoder token for error messages.
func tokenString(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		return v.String()
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
