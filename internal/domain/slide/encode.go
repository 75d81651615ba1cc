package slide

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode renders a slide as a JSON object whose first key is its type tag.
// Unknown slides are written back with their raw fields untouched.
func Encode(s Slide) (json.RawMessage, error) {
	if unknown, ok := s.(Unknown); ok {
		fields := unknown.Fields
		if fields == nil {
			fields = map[string]any{"type": unknown.Tag, "title": unknown.Title}
		}
		return json.Marshal(fields)
	}

	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode %s slide: %w", s.Type(), err)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	tag, _ := json.Marshal(string(s.Type()))
	buf.Write(tag)
	if inner := bytes.TrimSpace(body[1 : len(body)-1]); len(inner) > 0 {
		buf.WriteByte(',')
		buf.Write(inner)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON writes the deck as a JSON array of tagged slide objects.
func (s Sequence) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(s))
	for i, sl := range s {
		encoded, err := Encode(sl)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		items = append(items, encoded)
	}
	return json.Marshal(items)
}

// MarshalJSON keeps bare-string cards as strings.
func (c CardItem) MarshalJSON() ([]byte, error) {
	if c.Plain() {
		return json.Marshal(c.Text)
	}
	return json.Marshal(struct {
		Title string `json:"title"`
		Desc  string `json:"desc,omitempty"`
	}{c.Title, c.Desc})
}

// MarshalJSON writes captionless images as bare URLs.
func (i Image) MarshalJSON() ([]byte, error) {
	if i.Caption == "" {
		return json.Marshal(i.URL)
	}
	type rawImage Image
	return json.Marshal(rawImage(i))
}
