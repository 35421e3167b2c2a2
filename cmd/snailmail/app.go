package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/olsujabu/snailgame/audio"
	"github.com/olsujabu/snailgame/engine"
	"github.com/olsujabu/snailgame/input"
	"github.com/olsujabu/snailgame/render"
)

// app routes terminal intents to the scheduler, normalizer and presentation
// Runs on the UI goroutine
type app struct {
	scheduler  *engine.ClockScheduler
	normalizer *input.Normalizer
	machine    *input.Machine
	renderer   *render.TerminalRenderer
	sound      *audio.SoundManager
}

// handle processes one terminal event, false means quit
func (a *app) handle(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		a.renderer.Resize()
		a.renderer.Draw(a.scheduler.Snapshot())

	case input.IntentToggleMute:
		log.Printf("audio muted: %v", a.sound.ToggleMute())

	case input.IntentToggleDebug:
		a.renderer.ToggleDebug()

	case input.IntentTogglePause:
		a.scheduler.Submit(engine.CmdTogglePause)

	case input.IntentRestart:
		a.scheduler.Submit(engine.CmdRestart)

	case input.IntentToggleHand:
		log.Printf("hand control: %v", a.normalizer.ToggleHandControl())

	case input.IntentNudgeLeft:
		a.normalizer.NudgeLeft()

	case input.IntentNudgeRight:
		a.normalizer.NudgeRight()

	case input.IntentJump:
		// Jump doubles as restart on the game over screen
		if snap := a.scheduler.Snapshot(); snap != nil && snap.State == engine.StateGameOver {
			a.scheduler.Submit(engine.CmdRestart)
		} else {
			a.normalizer.RequestJump()
		}

	case input.IntentPointer:
		a.normalizer.Pointer(intent.X, intent.Width)
	}
	return true
}
