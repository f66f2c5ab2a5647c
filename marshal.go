package rusty

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Marshaling for Option: Some encodes as the contained value, None as null.
// The Unmarshal methods are the package's only pointer receivers; the
// interfaces require mutation.

// MarshalJSON encodes Some as the contained value and None as JSON null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes JSON null as None and any other value as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}

// IsZero reports None, so that omitzero drops empty Options from encoded
// structs.
func (o Option[T]) IsZero() bool {
	return !o.some
}

// MarshalYAML encodes Some as the contained value and None as YAML null.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.some {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes YAML null as None and any other node as Some.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = None[T]()
		return nil
	}
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}
