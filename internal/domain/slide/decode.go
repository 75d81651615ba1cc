package slide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes a deck from JSON or YAML. The document is either a bare list
// of slides or an object whose "slides" key holds that list. An empty
// document yields an empty sequence.
func Parse(data []byte, source string) (Sequence, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Sequence{}, nil
	}

	var root yaml.Node
	if trimmed[0] == '[' || trimmed[0] == '{' {
		var raw any
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, slideerrors.NewParseError(source, 0, err)
		}
		if err := root.Encode(raw); err != nil {
			return nil, slideerrors.NewParseError(source, 0, err)
		}
	} else if err := yaml.Unmarshal(trimmed, &root); err != nil {
		return nil, slideerrors.NewParseError(source, extractLine(err), err)
	}

	var seq Sequence
	if err := root.Decode(&seq); err != nil {
		return nil, slideerrors.NewParseError(source, extractLine(err), err)
	}
	if seq == nil {
		seq = Sequence{}
	}
	return seq, nil
}

// UnmarshalYAML accepts a bare list or a {slides: [...]} wrapper.
func (s *Sequence) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) > 0 {
		value = value.Content[0]
	}

	list := value
	if value.Kind == yaml.MappingNode {
		list = nil
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "slides" {
				list = value.Content[i+1]
				break
			}
		}
		if list == nil {
			return fmt.Errorf("line %d: deck object has no slides list", value.Line)
		}
	}

	if list.Kind == yaml.ScalarNode && list.Tag == "!!null" {
		*s = Sequence{}
		return nil
	}
	if list.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: slides must be a list", list.Line)
	}

	out := make(Sequence, 0, len(list.Content))
	for i, item := range list.Content {
		decoded, err := Decode(item)
		if err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
		out = append(out, decoded)
	}
	*s = out
	return nil
}

// Decode turns one tagged YAML node into its slide variant.
func Decode(value *yaml.Node) (Slide, error) {
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: slide must be an object", value.Line)
	}

	var head struct {
		Type  string `yaml:"type"`
		Title string `yaml:"title"`
	}
	if err := value.Decode(&head); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if !Type(head.Type).Known() {
		if err := value.Decode(&fields); err != nil {
			return nil, err
		}
		return Unknown{Tag: head.Type, Title: head.Title, Fields: fields}, nil
	}

	decoded, err := decodeKnown(Type(head.Type), value)
	if err == nil {
		return decoded, nil
	}
	// A known slide with a field of the wrong shape is kept as raw fields so
	// its neighbours still load and the export carries it unchanged.
	if ferr := value.Decode(&fields); ferr != nil {
		return nil, ferr
	}
	return Unknown{Tag: head.Type, Title: head.Title, Fields: fields, Err: err}, nil
}

func decodeKnown(t Type, value *yaml.Node) (Slide, error) {
	switch t {
	case TypeTitle:
		return decodeAs[Title](value)
	case TypeSection:
		return decodeAs[Section](value)
	case TypeClosing:
		return decodeAs[Closing](value)
	case TypeContent:
		return decodeAs[Content](value)
	case TypeCompare:
		return decodeAs[Compare](value)
	case TypeProcess:
		return decodeAs[Process](value)
	case TypeTimeline:
		return decodeAs[Timeline](value)
	case TypeDiagram:
		return decodeAs[Diagram](value)
	case TypeCards:
		return decodeAs[Cards](value)
	case TypeTable:
		return decodeAs[Table](value)
	case TypeProgress:
		return decodeAs[Progress](value)
	case TypeBarChart:
		return decodeAs[BarChart](value)
	case TypeLineChart:
		return decodeAs[LineChart](value)
	case TypePieChart:
		return decodeAs[PieChart](value)
	default:
		return nil, fmt.Errorf("unknown slide type %q", t)
	}
}

type variant interface {
	Title | Section | Closing | Content | Compare | Process | Timeline |
		Diagram | Cards | Table | Progress | BarChart | LineChart | PieChart
	Slide
}

func decodeAs[T variant](value *yaml.Node) (Slide, error) {
	var out T
	if err := value.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalYAML accepts either a bare string or a {title, desc} object.
func (c *CardItem) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*c = CardItem{Text: value.Value}
		return nil
	}
	var obj struct {
		Title string `yaml:"title"`
		Desc  string `yaml:"desc"`
	}
	if err := value.Decode(&obj); err != nil {
		return err
	}
	*c = CardItem{Title: obj.Title, Desc: obj.Desc}
	return nil
}

// UnmarshalYAML accepts either a bare URL or a {url, caption} object.
func (i *Image) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*i = Image{URL: value.Value}
		return nil
	}
	type rawImage Image
	var tmp rawImage
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*i = Image(tmp)
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
