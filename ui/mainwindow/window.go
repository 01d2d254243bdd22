// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"retag/internal/calc"
	"retag/internal/scanner"
	"retag/internal/tag"
	"retag/ui/panels"
)

// refreshInterval is how often the window re-reads the published tag list.
const refreshInterval = 250 * time.Millisecond

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app     fyne.App
	scan    *scanner.Scanner
	calcr   *calc.Calculator
	tags    *panels.TagsPanel
	results *panels.ResultsPanel

	startBtn  *widget.Button
	statusBar *widget.Label

	stopRefresh chan struct{}
}

// New creates the main window over a scanner and calculator.
func New(fyneApp fyne.App, scan *scanner.Scanner, calcr *calc.Calculator) *MainWindow {
	win := fyneApp.NewWindow("Re:Tag")

	mw := &MainWindow{
		Window:      win,
		app:         fyneApp,
		scan:        scan,
		calcr:       calcr,
		stopRefresh: make(chan struct{}),
	}

	mw.setupUI()
	mw.startRefreshLoop()
	win.SetOnClosed(func() {
		close(mw.stopRefresh)
		scan.Stop()
	})

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.tags = panels.NewTagsPanel()
	mw.results = panels.NewResultsPanel()
	mw.statusBar = widget.NewLabel("Idle")

	mw.startBtn = widget.NewButton("Start recognition", mw.onToggleScan)

	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(strconv.FormatInt(mw.scan.Interval().Milliseconds(), 10))
	intervalEntry.OnSubmitted = func(s string) {
		ms, err := strconv.Atoi(s)
		if err != nil || ms <= 0 {
			mw.statusBar.SetText(fmt.Sprintf("Bad interval %q", s))
			return
		}
		mw.scan.SetInterval(time.Duration(ms) * time.Millisecond)
		mw.statusBar.SetText(fmt.Sprintf("Interval set to %d ms", ms))
	}

	ignore1 := widget.NewCheck("Ignore 1*", mw.calcr.SetIgnoreTier1)
	ignore2 := widget.NewCheck("Ignore 2*", mw.calcr.SetIgnoreTier2)
	ignore3 := widget.NewCheck("Ignore 3*", mw.calcr.SetIgnoreTier3)

	controls := container.NewVBox(
		mw.startBtn,
		container.NewHBox(widget.NewLabel("Interval (ms):"), intervalEntry),
		container.NewHBox(ignore1, ignore2, ignore3),
	)

	split := container.NewHSplit(
		container.NewBorder(widget.NewLabel("Detected tags"), nil, nil, nil, mw.tags.Container()),
		container.NewBorder(widget.NewLabel("Recruitment results"), nil, nil, nil, mw.results.Container()),
	)
	split.SetOffset(0.35)

	content := container.NewBorder(
		controls,                          // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(900, 600))
}

func (mw *MainWindow) onToggleScan() {
	if mw.scan.Running() {
		mw.scan.Stop()
		mw.startBtn.SetText("Start recognition")
		mw.statusBar.SetText("Idle")
		return
	}
	mw.scan.Start()
	mw.startBtn.SetText("Stop recognition")
	mw.statusBar.SetText("Scanning")
}

// startRefreshLoop periodically reads the published tag snapshot and
// recomputes the recruitment results. The calculator runs here, on the
// presentation side; the detection loop is never blocked by it.
func (mw *MainWindow) startRefreshLoop() {
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-mw.stopRefresh:
				return
			case <-ticker.C:
				snapshot := mw.scan.Tags()
				detected := make([]tag.Detected, len(snapshot))
				for i, p := range snapshot {
					detected[i] = p.Detected
				}
				results := mw.calcr.Evaluate(detected)
				fyne.Do(func() {
					mw.tags.SetTags(snapshot)
					mw.results.SetResults(results)
				})
			}
		}
	}()
}
