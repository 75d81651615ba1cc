package render

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
)

func (r *renderer) title(s slide.Title) *Node {
	return (&Node{Kind: KindColumn, Role: "cover", Style: Style{Align: "center"}}).Append(
		&Node{
			Kind:  KindHeading,
			Role:  style.SizeTitle,
			Text:  s.Title,
			Style: Style{FontSize: r.size(style.SizeTitle), Bold: true},
		},
		&Node{
			Kind:  KindText,
			Role:  style.SizeDate,
			Text:  s.Date,
			Style: Style{FontSize: r.size(style.SizeDate)},
		},
	)
}

func (r *renderer) section(s slide.Section) []*Node {
	watermark := &Node{
		Kind: KindWatermark,
		Role: style.SizeGhostNum,
		Text: fmt.Sprintf("%02d", s.SectionNo),
		Style: Style{
			FontSize: r.size(style.SizeGhostNum),
			Color:    r.color(style.ColorGhostGray),
			Bold:     true,
			Opacity:  0.1,
			Align:    "center",
		},
	}
	body := (&Node{Kind: KindColumn, Role: "section", Style: Style{Align: "center"}}).Append(
		&Node{
			Kind:  KindHeading,
			Role:  style.SizeSectionTitle,
			Text:  s.Title,
			Style: Style{FontSize: r.size(style.SizeSectionTitle), Bold: true},
		},
	)
	return []*Node{watermark, body}
}

func (r *renderer) closing() *Node {
	col := (&Node{Kind: KindColumn, Role: "closing", Style: Style{Align: "center"}}).Append(
		&Node{
			Kind:  KindHeading,
			Role:  style.SizeTitle,
			Text:  ClosingMessage,
			Style: Style{FontSize: r.size(style.SizeTitle), Bold: true},
		},
	)
	if logo := r.cfg.Logos.Closing; logo != "" {
		col.Append(&Node{Kind: KindImage, Role: style.LogoClosing, Src: logo})
	}
	return col
}

// list renders strings as an ordered list of styled items.
func (r *renderer) list(role string, items []string) *Node {
	n := &Node{Kind: KindList, Role: role}
	for _, item := range items {
		n.Append(&Node{Kind: KindItem, Runs: SplitStyled(item)})
	}
	return n
}

func (r *renderer) content(s slide.Content) *Node {
	col := (&Node{Kind: KindColumn, Role: "content"}).Append(r.header(s.Title, s.Subhead)...)

	body := &Node{Kind: KindColumn, Role: "body", Style: Style{FontSize: r.size(style.SizeBody)}}
	if s.TwoColumn || s.Columns != nil {
		body.Kind = KindGrid
		body.Style.Columns = 2
	}

	if s.Columns != nil {
		for i, column := range s.Columns {
			body.Append(r.list("column"+strconv.Itoa(i+1), column))
		}
	} else if s.Points != nil {
		body.Append(r.list("points", s.Points))
	}

	return col.Append(body)
}

func (r *renderer) compare(s slide.Compare) *Node {
	lane := func(role, title string, items []string) *Node {
		return (&Node{Kind: KindPanel, Role: role, Style: Style{BorderColor: r.color(style.ColorLaneBorder)}}).Append(
			&Node{
				Kind: KindHeading,
				Role: style.SizeLaneTitle,
				Text: title,
				Style: Style{
					FontSize:   r.size(style.SizeLaneTitle),
					Bold:       true,
					Align:      "center",
					Background: r.color(style.ColorPrimaryBlue),
					Color:      r.color(style.ColorBackgroundWhite),
				},
			},
			r.list("items", items),
		)
	}

	grid := (&Node{Kind: KindGrid, Role: "lanes", Style: Style{Columns: 2}}).Append(
		lane("left", s.LeftTitle, s.LeftItems),
		lane("right", s.RightTitle, s.RightItems),
	)

	return (&Node{Kind: KindColumn, Role: "compare", Style: Style{FontSize: r.size(style.SizeBody)}}).
		Append(r.header(s.Title, s.Subhead)...).
		Append(grid)
}

func (r *renderer) process(s slide.Process) *Node {
	steps := (&Node{Kind: KindColumn, Role: "steps"}).Append(
		&Node{Kind: KindRail, Role: "process", Style: Style{Background: r.color(style.ColorFaintGray)}},
	)
	for i, step := range s.Steps {
		steps.Append((&Node{Kind: KindRow, Role: "step"}).Append(
			&Node{
				Kind: KindLabel,
				Role: style.SizeChip,
				Text: strconv.Itoa(i + 1),
				Style: Style{
					FontSize:   r.size(style.SizeChip),
					Bold:       true,
					Align:      "center",
					Background: r.color(style.ColorPrimaryBlue),
					Color:      r.color(style.ColorBackgroundWhite),
				},
			},
			&Node{
				Kind: KindPanel,
				Role: style.SizeProcessStep,
				Runs: SplitStyled(step),
				Style: Style{
					FontSize:   r.size(style.SizeProcessStep),
					Background: r.color(style.ColorBackgroundGray),
				},
			},
		))
	}
	return (&Node{Kind: KindColumn, Role: "process"}).Append(r.header(s.Title, s.Subhead)...).Append(steps)
}

// MilestoneColorRole maps a milestone state to its marker color role.
func MilestoneColorRole(state slide.MilestoneState) string {
	switch state.Effective() {
	case slide.StateDone:
		return style.ColorGoogleGreen
	case slide.StateNext:
		return style.ColorGoogleYellow
	default:
		return style.ColorNeutralGray
	}
}

func (r *renderer) timeline(s slide.Timeline) *Node {
	track := (&Node{Kind: KindRow, Role: "milestones"}).Append(
		&Node{Kind: KindRail, Role: "timeline", Style: Style{Background: r.color(style.ColorFaintGray)}},
	)

	for i, m := range s.Milestones {
		caption := []*Node{
			{Kind: KindLabel, Role: "milestone", Text: m.Label, Style: Style{FontSize: r.size(style.SizeSmall), Bold: true, Align: "center"}},
			{Kind: KindText, Role: "date", Text: m.Date, Style: Style{FontSize: r.size(style.SizeSmall), Opacity: 0.7, Align: "center"}},
		}
		marker := &Node{
			Kind: KindMarker,
			Role: string(m.State.Effective()),
			Style: Style{
				Background:  r.color(MilestoneColorRole(m.State)),
				BorderColor: r.bg,
			},
		}

		// Even positions sit above the rail, odd ones below.
		pos := &Node{Kind: KindColumn, Role: "above"}
		if i%2 == 0 {
			pos.Append(caption...).Append(marker)
		} else {
			pos.Role = "below"
			pos.Append(marker).Append(caption...)
		}
		track.Append(pos)
	}

	return (&Node{Kind: KindColumn, Role: "timeline"}).Append(r.header(s.Title, s.Subhead)...).Append(track)
}

func (r *renderer) diagram(s slide.Diagram) *Node {
	lanes := &Node{Kind: KindRow, Role: "lanes"}
	for i, lane := range s.Lanes {
		panel := (&Node{Kind: KindPanel, Role: "lane", Style: Style{BorderColor: r.color(style.ColorLaneBorder)}}).Append(
			&Node{
				Kind: KindHeading,
				Role: style.SizeLaneTitle,
				Text: lane.Title,
				Style: Style{
					FontSize:    r.size(style.SizeLaneTitle),
					Bold:        true,
					Align:       "center",
					Background:  r.color(style.ColorLaneTitleBg),
					BorderColor: r.color(style.ColorLaneBorder),
				},
			},
		)
		for _, item := range lane.Items {
			panel.Append(&Node{
				Kind: KindPanel,
				Role: "card",
				Runs: SplitStyled(item),
				Style: Style{
					FontSize:    r.size(style.SizeBody),
					Align:       "center",
					Background:  r.color(style.ColorCardBg),
					BorderColor: r.color(style.ColorCardBorder),
				},
			})
		}
		lanes.Append(panel)

		if i < len(s.Lanes)-1 {
			lanes.Append(&Node{
				Kind:  KindConnector,
				Role:  "arrow",
				Text:  "→",
				Style: Style{Color: r.color(style.ColorPrimaryBlue), Align: "center"},
			})
		}
	}
	return (&Node{Kind: KindColumn, Role: "diagram"}).Append(r.header(s.Title, s.Subhead)...).Append(lanes)
}

func (r *renderer) cards(s slide.Cards) *Node {
	grid := &Node{Kind: KindGrid, Role: "cards", Style: Style{Columns: s.GridColumns()}}
	for _, item := range s.Items {
		card := &Node{
			Kind: KindPanel,
			Role: "card",
			Style: Style{
				FontSize:    r.size(style.SizeBody),
				Background:  r.color(style.ColorCardBg),
				BorderColor: r.color(style.ColorCardBorder),
			},
		}
		if item.Plain() {
			card.Runs = SplitStyled(item.Text)
		} else {
			card.Append(&Node{Kind: KindText, Role: "cardTitle", Runs: SplitStyled(item.Title), Style: Style{Bold: true}})
			if item.Desc != "" {
				card.Append(&Node{
					Kind:  KindText,
					Role:  "cardDesc",
					Runs:  SplitStyled(item.Desc),
					Style: Style{FontSize: r.size(style.SizeSmall)},
				})
			}
		}
		grid.Append(card)
	}
	return (&Node{Kind: KindColumn, Role: "cards"}).Append(r.header(s.Title, s.Subhead)...).Append(grid)
}

func (r *renderer) table(s slide.Table) *Node {
	table := &Node{Kind: KindTable, Role: "table"}

	head := &Node{Kind: KindTableRow, Role: "head"}
	for _, h := range s.Headers {
		head.Append(&Node{
			Kind: KindHeaderCell,
			Text: h,
			Style: Style{
				Bold:        true,
				Background:  r.color(style.ColorBackgroundGray),
				BorderColor: r.color(style.ColorLaneBorder),
			},
		})
	}
	table.Append(head)

	// Rows keep their own length; a mismatch with the header count is drawn as given.
	for i, row := range s.Rows {
		tr := &Node{Kind: KindTableRow, Role: "row"}
		if i%2 == 1 {
			tr.Style.Background = r.color(style.ColorBackgroundGray)
		}
		for _, cell := range row {
			tr.Append(&Node{Kind: KindCell, Text: cell, Style: Style{BorderColor: r.color(style.ColorFaintGray)}})
		}
		table.Append(tr)
	}

	return (&Node{Kind: KindColumn, Role: "table", Style: Style{FontSize: r.size(style.SizeBody)}}).
		Append(r.header(s.Title, s.Subhead)...).
		Append(table)
}
