package tool

import "encoding/json"

// ReturnValue is the serialized outcome of a successful tool invocation.
// It is a tagged union of boolean, string, and structured JSON values and
// marshals directly into the JSON-RPC result field.
type ReturnValue struct {
	raw json.RawMessage
}

// Bool returns a boolean result.
func Bool(v bool) ReturnValue {
	if v {
		return ReturnValue{raw: json.RawMessage("true")}
	}

	return ReturnValue{raw: json.RawMessage("false")}
}

// Text returns a string result.
func Text(s string) ReturnValue {
	raw, _ := json.Marshal(s)

	return ReturnValue{raw: raw}
}

// Object returns a structured result marshaled from v.
func Object(v any) (ReturnValue, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return ReturnValue{}, err
	}

	return ReturnValue{raw: raw}, nil
}

// Raw wraps pre-serialized JSON, e.g. a status document a capability already
// produced. The caller guarantees it is valid JSON.
func Raw(data json.RawMessage) ReturnValue {
	return ReturnValue{raw: data}
}

// MarshalJSON implements json.Marshaler.
func (r ReturnValue) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return json.RawMessage("null"), nil
	}

	return r.raw, nil
}
