// Package slide defines the closed set of slide variants a deck is made of.
//
// A deck arrives from the content-generation service as JSON (or YAML) where
// every element carries a "type" tag. Decode maps the tag onto one of the
// variant structs below. Tags outside the known set decode to Unknown so the
// rest of the deck keeps working and the raw fields survive for export.
package slide

// Type is the tag that selects a slide variant.
type Type string

const (
	TypeTitle     Type = "title"
	TypeSection   Type = "section"
	TypeClosing   Type = "closing"
	TypeContent   Type = "content"
	TypeCompare   Type = "compare"
	TypeProcess   Type = "process"
	TypeTimeline  Type = "timeline"
	TypeDiagram   Type = "diagram"
	TypeCards     Type = "cards"
	TypeTable     Type = "table"
	TypeProgress  Type = "progress"
	TypeBarChart  Type = "barchart"
	TypeLineChart Type = "linechart"
	TypePieChart  Type = "piechart"
)

// Types lists every known tag in declaration order.
var Types = []Type{
	TypeTitle, TypeSection, TypeClosing, TypeContent, TypeCompare, TypeProcess,
	TypeTimeline, TypeDiagram, TypeCards, TypeTable, TypeProgress,
	TypeBarChart, TypeLineChart, TypePieChart,
}

// Known reports whether t is one of the fourteen supported tags.
func (t Type) Known() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Slide is implemented by every variant. The unexported marker keeps the set closed.
type Slide interface {
	Type() Type
	// Heading returns the slide title, empty for closing slides.
	Heading() string
	SpeakerNotes() string
	isSlide()
}

// Sequence is an ordered deck. Index is the only addressing mechanism.
type Sequence []Slide

// Meta holds the fields shared by every variant.
type Meta struct {
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// SpeakerNotes returns the opaque presenter notes.
func (m Meta) SpeakerNotes() string { return m.Notes }

func (Meta) isSlide() {}

// Image is a picture reference attached to list-style slides. It is carried
// through to export and never drawn by the previewer.
type Image struct {
	URL     string `yaml:"url" json:"url"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
}

type Title struct {
	Meta  `yaml:",inline"`
	Title string `yaml:"title" json:"title"`
	Date  string `yaml:"date" json:"date"`
}

type Section struct {
	Meta      `yaml:",inline"`
	Title     string `yaml:"title" json:"title"`
	SectionNo int    `yaml:"sectionNo,omitempty" json:"sectionNo,omitempty"`
}

type Closing struct {
	Meta `yaml:",inline"`
}

// Content is a bullet slide. Columns, when present, wins over Points.
type Content struct {
	Meta      `yaml:",inline"`
	Title     string     `yaml:"title" json:"title"`
	Subhead   string     `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Points    []string   `yaml:"points,omitempty" json:"points,omitempty"`
	TwoColumn bool       `yaml:"twoColumn,omitempty" json:"twoColumn,omitempty"`
	Columns   [][]string `yaml:"columns,omitempty" json:"columns,omitempty"`
	Images    []Image    `yaml:"images,omitempty" json:"images,omitempty"`
}

type Compare struct {
	Meta       `yaml:",inline"`
	Title      string   `yaml:"title" json:"title"`
	Subhead    string   `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	LeftTitle  string   `yaml:"leftTitle" json:"leftTitle"`
	RightTitle string   `yaml:"rightTitle" json:"rightTitle"`
	LeftItems  []string `yaml:"leftItems" json:"leftItems"`
	RightItems []string `yaml:"rightItems" json:"rightItems"`
	Images     []Image  `yaml:"images,omitempty" json:"images,omitempty"`
}

type Process struct {
	Meta    `yaml:",inline"`
	Title   string   `yaml:"title" json:"title"`
	Subhead string   `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Steps   []string `yaml:"steps" json:"steps"`
	Images  []Image  `yaml:"images,omitempty" json:"images,omitempty"`
}

// MilestoneState colors a timeline marker. The empty value means todo.
type MilestoneState string

const (
	StateDone MilestoneState = "done"
	StateNext MilestoneState = "next"
	StateTodo MilestoneState = "todo"
)

// Effective resolves the empty and unknown states to todo.
func (s MilestoneState) Effective() MilestoneState {
	switch s {
	case StateDone, StateNext:
		return s
	default:
		return StateTodo
	}
}

type Milestone struct {
	Label string         `yaml:"label" json:"label"`
	Date  string         `yaml:"date" json:"date"`
	State MilestoneState `yaml:"state,omitempty" json:"state,omitempty"`
}

type Timeline struct {
	Meta       `yaml:",inline"`
	Title      string      `yaml:"title" json:"title"`
	Subhead    string      `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Milestones []Milestone `yaml:"milestones" json:"milestones"`
	Images     []Image     `yaml:"images,omitempty" json:"images,omitempty"`
}

type Lane struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

type Diagram struct {
	Meta    `yaml:",inline"`
	Title   string  `yaml:"title" json:"title"`
	Subhead string  `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Lanes   []Lane  `yaml:"lanes" json:"lanes"`
	Images  []Image `yaml:"images,omitempty" json:"images,omitempty"`
}

// CardItem is either a plain string (Text) or a titled card with an optional description.
type CardItem struct {
	Text  string
	Title string
	Desc  string
}

// Plain reports whether the item was given as a bare string.
func (c CardItem) Plain() bool {
	return c.Title == "" && c.Desc == ""
}

type Cards struct {
	Meta    `yaml:",inline"`
	Title   string     `yaml:"title" json:"title"`
	Subhead string     `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Columns int        `yaml:"columns,omitempty" json:"columns,omitempty"`
	Items   []CardItem `yaml:"items" json:"items"`
	Images  []Image    `yaml:"images,omitempty" json:"images,omitempty"`
}

// GridColumns returns 2 or 3; anything else falls back to 3.
func (c Cards) GridColumns() int {
	if c.Columns == 2 {
		return 2
	}
	return 3
}

// Table rows are not required to match the header count.
type Table struct {
	Meta    `yaml:",inline"`
	Title   string     `yaml:"title" json:"title"`
	Subhead string     `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Headers []string   `yaml:"headers" json:"headers"`
	Rows    [][]string `yaml:"rows" json:"rows"`
}

type ProgressItem struct {
	Label   string `yaml:"label" json:"label"`
	Percent int    `yaml:"percent" json:"percent"`
}

type Progress struct {
	Meta    `yaml:",inline"`
	Title   string         `yaml:"title" json:"title"`
	Subhead string         `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Items   []ProgressItem `yaml:"items" json:"items"`
}

// Datum is one labelled value of a bar or pie chart.
type Datum struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

type BarChart struct {
	Meta    `yaml:",inline"`
	Title   string  `yaml:"title" json:"title"`
	Subhead string  `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Data    []Datum `yaml:"data" json:"data"`
}

type Dataset struct {
	Label  string    `yaml:"label" json:"label"`
	Values []float64 `yaml:"values" json:"values"`
}

type LineData struct {
	Datasets []Dataset `yaml:"datasets" json:"datasets"`
	Labels   []string  `yaml:"labels" json:"labels"`
}

type LineChart struct {
	Meta    `yaml:",inline"`
	Title   string   `yaml:"title" json:"title"`
	Subhead string   `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Data    LineData `yaml:"data" json:"data"`
}

type PieChart struct {
	Meta    `yaml:",inline"`
	Title   string  `yaml:"title" json:"title"`
	Subhead string  `yaml:"subhead,omitempty" json:"subhead,omitempty"`
	Data    []Datum `yaml:"data" json:"data"`
}

// Unknown keeps a slide whose tag is not recognised, with every raw field.
// A slide with a known tag whose fields could not be decoded is also kept
// here, with Err set.
type Unknown struct {
	Tag    string
	Title  string
	Fields map[string]any
	Err    error
}

// Malformed reports whether the slide carried a known tag but failed to decode.
func (u Unknown) Malformed() bool { return u.Err != nil }

// Issue describes one slide that was kept as raw fields because it failed to decode.
type Issue struct {
	Index int
	Tag   string
	Err   error
}

// Issues lists the malformed slides of the deck, in order.
func (s Sequence) Issues() []Issue {
	var out []Issue
	for i, sl := range s {
		if u, ok := sl.(Unknown); ok && u.Malformed() {
			out = append(out, Issue{Index: i, Tag: u.Tag, Err: u.Err})
		}
	}
	return out
}

func (u Unknown) Type() Type           { return Type(u.Tag) }
func (u Unknown) Heading() string      { return u.Title }
func (u Unknown) SpeakerNotes() string { return stringField(u.Fields, "notes") }
func (Unknown) isSlide()               {}

func (Title) Type() Type     { return TypeTitle }
func (Section) Type() Type   { return TypeSection }
func (Closing) Type() Type   { return TypeClosing }
func (Content) Type() Type   { return TypeContent }
func (Compare) Type() Type   { return TypeCompare }
func (Process) Type() Type   { return TypeProcess }
func (Timeline) Type() Type  { return TypeTimeline }
func (Diagram) Type() Type   { return TypeDiagram }
func (Cards) Type() Type     { return TypeCards }
func (Table) Type() Type     { return TypeTable }
func (Progress) Type() Type  { return TypeProgress }
func (BarChart) Type() Type  { return TypeBarChart }
func (LineChart) Type() Type { return TypeLineChart }
func (PieChart) Type() Type  { return TypePieChart }

func (s Title) Heading() string     { return s.Title }
func (s Section) Heading() string   { return s.Title }
func (Closing) Heading() string     { return "" }
func (s Content) Heading() string   { return s.Title }
func (s Compare) Heading() string   { return s.Title }
func (s Process) Heading() string   { return s.Title }
func (s Timeline) Heading() string  { return s.Title }
func (s Diagram) Heading() string   { return s.Title }
func (s Cards) Heading() string     { return s.Title }
func (s Table) Heading() string     { return s.Title }
func (s Progress) Heading() string  { return s.Title }
func (s BarChart) Heading() string  { return s.Title }
func (s LineChart) Heading() string { return s.Title }
func (s PieChart) Heading() string  { return s.Title }

func stringField(fields map[string]any, key string) string {
	if fields == nil {
		return ""
	}
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
