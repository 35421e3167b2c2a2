package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/olsujabu/snailgame/engine"
)

var (
	colorTitle = color.New(color.FgYellow, color.Bold)
	colorScore = color.New(color.FgGreen, color.Bold)
	colorBest  = color.New(color.FgMagenta)
	colorInfo  = color.New(color.FgCyan)
	colorAlert = color.New(color.FgRed)
)

// printSummary writes the post-game report after the screen is released
func printSummary(w io.Writer, snap *engine.Snapshot, best int, newBest bool, saveFailures int64) {
	if snap == nil {
		return
	}
	p := message.NewPrinter(language.English)

	colorTitle.Fprintln(w, "*** Snail Mail ***")
	fmt.Fprintf(w, "Final score: %s\n", colorScore.Sprint(formatScore(p, snap.Score)))
	if newBest {
		colorBest.Fprintln(w, "NEW HIGH SCORE!")
	}
	fmt.Fprintf(w, "High score:  %s\n", colorBest.Sprint(formatScore(p, best)))
	colorInfo.Fprintf(w, "Played %.1fs over %d ticks, ended %s\n", snap.Now, snap.Tick, snap.State)
	if saveFailures > 0 {
		colorAlert.Fprintf(w, "High score could not be saved (%d failed writes)\n", saveFailures)
	}
}

// formatScore adds thousands separators, like 12,400
func formatScore(p *message.Printer, v int) string {
	return p.Sprintf("%d", v)
}
