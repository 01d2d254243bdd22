// Package panels provides the main window's side panels.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"retag/internal/tag"
)

// TagsPanel lists the live detected tags with their selection state and
// absolute screen placement.
type TagsPanel struct {
	list *widget.List
	tags []tag.Positioned
}

// NewTagsPanel creates an empty tags panel.
func NewTagsPanel() *TagsPanel {
	tp := &TagsPanel{}
	tp.list = widget.NewList(
		func() int { return len(tp.tags) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(tp.tags) {
				return
			}
			t := tp.tags[i]
			state := "off"
			if t.Selected {
				state = "ON"
			}
			obj.(*widget.Label).SetText(fmt.Sprintf("%s [%s] @ (%d,%d) %dx%d",
				t.Kind, state,
				t.ScreenRegion.X, t.ScreenRegion.Y,
				t.ScreenRegion.Width, t.ScreenRegion.Height))
		},
	)
	return tp
}

// SetTags replaces the displayed tag list.
func (tp *TagsPanel) SetTags(tags []tag.Positioned) {
	tp.tags = tags
	tp.list.Refresh()
}

// Container returns the panel's root object.
func (tp *TagsPanel) Container() fyne.CanvasObject {
	return tp.list
}
