package list

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes l as a JSON array. The empty list encodes as [].
func (l List[A]) MarshalJSON() ([]byte, error) {
	s := l.ToSlice()
	if s == nil {
		s = []A{}
	}
	return json.Marshal(s)
}

// UnmarshalJSON decodes a JSON array into a new list and lets l denote it.
// The cells of the former value of l are not touched.
func (l *List[A]) UnmarshalJSON(data []byte) error {
	var s []A
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = FromSlice(s)
	return nil
}

// MarshalYAML encodes l as a YAML sequence.
func (l List[A]) MarshalYAML() (interface{}, error) {
	s := l.ToSlice()
	if s == nil {
		s = []A{}
	}
	return s, nil
}

// UnmarshalYAML decodes a YAML sequence into a new list and lets l denote it.
func (l *List[A]) UnmarshalYAML(node *yaml.Node) error {
	var s []A
	if err := node.Decode(&s); err != nil {
		return err
	}
	*l = FromSlice(s)
	return nil
}

var _ json.Marshaler = List[int]{}
var _ json.Unmarshaler = &List[int]{}
var _ yaml.Marshaler = List[int]{}
var _ yaml.Unmarshaler = &List[int]{}
