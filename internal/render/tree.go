// Package render maps a slide and a style snapshot onto a backend-neutral
// visual tree. HTML and terminal backends paint the same tree.
package render

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
)

// Kind names what a node draws.
type Kind string

const (
	KindFrame      Kind = "frame"
	KindColumn     Kind = "column"
	KindRow        Kind = "row"
	KindGrid       Kind = "grid"
	KindPanel      Kind = "panel"
	KindHeading    Kind = "heading"
	KindText       Kind = "text"
	KindList       Kind = "list"
	KindItem       Kind = "item"
	KindTable      Kind = "table"
	KindTableRow   Kind = "tablerow"
	KindHeaderCell Kind = "headercell"
	KindCell       Kind = "cell"
	KindBar        Kind = "bar"
	KindCanvas     Kind = "canvas"
	KindPath       Kind = "path"
	KindCircle     Kind = "circle"
	KindLine       Kind = "line"
	KindLabel      Kind = "label"
	KindMarker     Kind = "marker"
	KindConnector  Kind = "connector"
	KindRail       Kind = "rail"
	KindWatermark  Kind = "watermark"
	KindOrnament   Kind = "ornament"
	KindImage      Kind = "image"
	KindNotice     Kind = "notice"
)

// Run is a segment of styled text.
type Run struct {
	Text     string
	Emphasis bool
}

// Style carries the resolved presentation attributes of a node. Zero values mean inherit.
type Style struct {
	Color       string
	Background  string
	BorderColor string
	FontFamily  string
	FontSize    float64
	Bold        bool
	Opacity     float64
	Columns     int
	Align       string
}

// Geometry positions vector nodes inside the nearest canvas.
type Geometry struct {
	Width, Height  float64
	D              string
	X1, Y1, X2, Y2 float64
	CX, CY, R      float64
	X, Y           float64
	Anchor         string
	StrokeWidth    float64
	// Length is the polyline length of D, used for stroke-draw animation.
	Length   float64
	Start    float64
	Sweep    float64
	LargeArc bool
}

// Axis selects which property a reveal animates.
type Axis string

const (
	AxisHeight Axis = "height"
	AxisWidth  Axis = "width"
	AxisScale  Axis = "scale"
	AxisStroke Axis = "stroke"
)

// Fill is an animated target. Backends draw Target scaled by reveal progress.
type Fill struct {
	Axis Axis
	// Target is a percentage for height and width, and 1 for scale and stroke.
	Target float64
}

// At returns the fill value at reveal progress p in [0, 1].
func (f Fill) At(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return f.Target
	}
	return f.Target * p
}

type Node struct {
	Kind     Kind
	Role     string
	Text     string
	Runs     []Run
	Src      string
	Style    Style
	Geometry *Geometry
	Fill     *Fill
	Children []*Node
}

// Append adds children and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Walk visits n and its descendants depth first. Returning false skips a subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every descendant (n included) of the given kind.
func (n *Node) Find(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.Kind == kind {
			out = append(out, node)
		}
		return true
	})
	return out
}

// FindRole returns every descendant (n included) with the given role.
func (n *Node) FindRole(role string) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.Role == role {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Content returns the node's own text, joining runs when present.
func (n *Node) Content() string {
	if len(n.Runs) == 0 {
		return n.Text
	}
	var b strings.Builder
	for _, r := range n.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Texts collects every non-empty text in document order.
func (n *Node) Texts() []string {
	var out []string
	n.Walk(func(node *Node) bool {
		if s := node.Content(); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}

// Animation describes the reveal a chart or progress slide performs.
type Animation struct {
	Delay    time.Duration
	Duration time.Duration
	// Armed is true when the slide was rendered visible and should reveal.
	Armed bool
}

// Tree is the output of one render pass.
type Tree struct {
	Type      slide.Type
	Root      *Node
	Animation *Animation
}

// Animated reports whether the tree carries reveal state.
func (t Tree) Animated() bool {
	return t.Animation != nil
}
