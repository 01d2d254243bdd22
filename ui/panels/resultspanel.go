package panels

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"retag/internal/calc"
)

// ResultsPanel shows the recruitment results, one row per tag combination.
type ResultsPanel struct {
	list *widget.List
	rows []resultRow
}

type resultRow struct {
	combo     string
	operators string
}

// NewResultsPanel creates an empty results panel.
func NewResultsPanel() *ResultsPanel {
	rp := &ResultsPanel{}
	rp.list = widget.NewList(
		func() int { return len(rp.rows) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Wrapping = fyne.TextWrapWord
			return l
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(rp.rows) {
				return
			}
			row := rp.rows[i]
			obj.(*widget.Label).SetText(row.combo + "  ->  " + row.operators)
		},
	)
	return rp
}

// SetResults replaces the displayed results.
func (rp *ResultsPanel) SetResults(results []calc.Result) {
	rows := make([]resultRow, len(results))
	for i, r := range results {
		kinds := make([]string, len(r.Tags))
		for j, k := range r.Tags {
			kinds[j] = k.String()
		}
		names := make([]string, len(r.Operators))
		for j, op := range r.Operators {
			names[j] = op.Name
		}
		rows[i] = resultRow{
			combo:     strings.Join(kinds, " + "),
			operators: strings.Join(names, ", "),
		}
	}
	rp.rows = rows
	rp.list.Refresh()
}

// Container returns the panel's root object.
func (rp *ResultsPanel) Container() fyne.CanvasObject {
	return rp.list
}
