package text

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// The JSON form of a document is its list of line strings; it round-trips
// through Of into an equal document.

// ToJSON returns the document's logical lines.
func (t Text) ToJSON() []string {
	return t.node().flatten(make([]string, 0, t.LineCount()))
}

// FromJSON builds a document from its JSON form. It returns ErrMalformedJSON
// when data is not a JSON array of strings.
func FromJSON(data []byte) (Text, error) {
	if !gjson.ValidBytes(data) {
		return Text{}, fmt.Errorf("parse document form: %w", ErrMalformedJSON)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return Text{}, fmt.Errorf("document form is %s, want array: %w", parsed.Type, ErrMalformedJSON)
	}
	elems := parsed.Array()
	lines := make([]string, len(elems))
	for i, elem := range elems {
		if elem.Type != gjson.String {
			return Text{}, fmt.Errorf("line %d is %s, want string: %w", i+1, elem.Type, ErrMalformedJSON)
		}
		lines[i] = elem.String()
	}
	return Of(lines)
}

// MarshalJSON implements json.Marshaler using the line-list form.
func (t Text) MarshalJSON() ([]byte, error) {
	out := []byte("[]")
	for _, line := range t.ToJSON() {
		var err error
		out, err = sjson.SetBytes(out, "-1", line)
		if err != nil {
			return nil, fmt.Errorf("marshal document form: %w", err)
		}
	}
	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler using the line-list form.
func (t *Text) UnmarshalJSON(data []byte) error {
	doc, err := FromJSON(data)
	if err != nil {
		return err
	}
	*t = doc
	return nil
}
