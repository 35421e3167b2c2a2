package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/olsujabu/snailgame/constants"
	"github.com/olsujabu/snailgame/core"
	"github.com/olsujabu/snailgame/events"
	"github.com/olsujabu/snailgame/status"
)

// InputSampler is the non-blocking view of the input normalizer read once per tick
// Latched requests are consumed by the Take* calls; most recent value wins
type InputSampler interface {
	Steering() float64
	HandControl() bool
	TakeJump() bool
	TakeResume() bool
	TakePause() bool
	Recenter()
}

// Command is a session request from the UI goroutine
type Command uint8

const (
	CmdNone Command = iota
	CmdPause
	CmdResume
	CmdTogglePause
	CmdRestart
)

// SchedulerConfig wires the scheduler's collaborators
type SchedulerConfig struct {
	Sim          *Simulation
	Player       *Player
	Input        InputSampler // Optional; absent input steers to 0
	Queue        *events.EventQueue
	Clock        *PausableClock
	Status       *status.Registry
	TickInterval time.Duration
	BestScore    func() int // Optional HUD best score source
}

// ClockScheduler owns the simulation on a single goroutine
// Other goroutines talk to it through Submit and read it through Snapshot
type ClockScheduler struct {
	sim    *Simulation
	player *Player
	input  InputSampler
	router *events.Router
	clock  *PausableClock
	best   func() int

	tickInterval time.Duration
	lastTick     time.Time

	commands chan Command
	updated  chan struct{}
	snapshot atomic.Pointer[Snapshot]

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statusReg     *status.Registry
	statTicks     *atomic.Int64
	statSpawned   *atomic.Int64
	statCollected *atomic.Int64
	statHits      *atomic.Int64
	statDropped   *atomic.Int64
	statSpeed     *status.AtomicFloat
	statState     *status.AtomicString
}

// NewClockScheduler creates a stopped scheduler and publishes the initial snapshot
func NewClockScheduler(cfg SchedulerConfig) *ClockScheduler {
	if cfg.Queue == nil {
		cfg.Queue = cfg.Sim.queue
	}
	if cfg.Clock == nil {
		cfg.Clock = NewPausableClock(nil)
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Player == nil {
		cfg.Player = NewPlayer(cfg.Sim.Tuning())
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.GameUpdateInterval
	}

	cs := &ClockScheduler{
		sim:           cfg.Sim,
		player:        cfg.Player,
		input:         cfg.Input,
		router:        events.NewRouter(cfg.Queue),
		clock:         cfg.Clock,
		best:          cfg.BestScore,
		tickInterval:  cfg.TickInterval,
		lastTick:      cfg.Clock.Now(),
		commands:      make(chan Command, constants.CommandQueueSize),
		updated:       make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		statusReg:     cfg.Status,
		statTicks:     cfg.Status.Ints.Get("engine.ticks"),
		statSpawned:   cfg.Status.Ints.Get("sim.spawned"),
		statCollected: cfg.Status.Ints.Get("sim.collected"),
		statHits:      cfg.Status.Ints.Get("sim.hits"),
		statDropped:   cfg.Status.Ints.Get("events.dropped"),
		statSpeed:     cfg.Status.Floats.Get("sim.speed"),
		statState:     cfg.Status.Strings.Get("sim.state"),
	}
	cs.publish()
	return cs
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler events.Handler) {
	cs.router.Register(handler)
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Submit queues a session command without blocking; false if the queue is full
func (cs *ClockScheduler) Submit(cmd Command) bool {
	select {
	case cs.commands <- cmd:
		return true
	default:
		return false
	}
}

// Snapshot returns the most recently published state
func (cs *ClockScheduler) Snapshot() *Snapshot {
	return cs.snapshot.Load()
}

// Updates signals after each published snapshot; coalesced to one pending signal
func (cs *ClockScheduler) Updates() <-chan struct{} {
	return cs.updated
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.Step()
		}
	}
}

// Step runs one scheduler cycle: commands, input, simulation tick, event dispatch, publish
// Called by the loop goroutine; tests call it directly on a stopped scheduler
func (cs *ClockScheduler) Step() {
	cs.drainCommands()

	if cs.input != nil {
		if cs.input.TakeResume() {
			cs.sim.Resume()
		}
		if cs.input.TakePause() {
			cs.sim.Pause()
		}
	}
	cs.syncClock()

	now := cs.clock.Now()
	dt := now.Sub(cs.lastTick)
	cs.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > constants.MaxTickDelta {
		dt = constants.MaxTickDelta
	}

	steering, jump := 0.0, false
	if cs.input != nil {
		steering = cs.input.Steering()
		jump = cs.input.TakeJump()
	}

	if cs.sim.State() == StatePlaying {
		if cs.player.Update(dt, steering, jump) {
			cs.sim.NotifyJump()
		}
		delta := cs.sim.Tick(dt, TickInput{PlayerX: cs.player.X, PlayerY: cs.player.Y()})
		cs.statSpawned.Add(int64(delta.Spawned))
		cs.statCollected.Add(int64(delta.Collected))
		cs.statHits.Add(int64(delta.Hits))
		if delta.GameOver {
			log.Printf("game over: score=%d ticks=%d", cs.sim.Score(), delta.Tick)
		}
	}

	cs.router.DispatchAll()
	cs.syncClock()

	cs.statTicks.Add(1)
	cs.statDropped.Store(int64(cs.sim.queue.Dropped()))
	cs.statSpeed.Set(cs.sim.Speed())
	cs.statState.Store(cs.sim.State().String())

	cs.publish()
}

func (cs *ClockScheduler) drainCommands() {
	for {
		select {
		case cmd := <-cs.commands:
			cs.execute(cmd)
		default:
			return
		}
	}
}

func (cs *ClockScheduler) execute(cmd Command) {
	switch cmd {
	case CmdPause:
		cs.sim.Pause()
	case CmdResume:
		cs.sim.Resume()
	case CmdTogglePause:
		cs.sim.TogglePause()
	case CmdRestart:
		if cs.sim.Restart() {
			cs.player.Reset()
			if cs.input != nil {
				cs.input.Recenter()
			}
			log.Printf("session restarted")
		}
	}
}

// syncClock freezes game time outside playing
func (cs *ClockScheduler) syncClock() {
	if cs.sim.State() == StatePlaying {
		cs.clock.Resume()
	} else {
		cs.clock.Pause()
	}
}

func (cs *ClockScheduler) publish() {
	snap := cs.sim.Snapshot()
	snap.Player = cs.player.View()
	if cs.best != nil {
		snap.BestScore = max(cs.best(), snap.Score)
	} else {
		snap.BestScore = snap.Score
	}
	if cs.input != nil {
		snap.HandControl = cs.input.HandControl()
		snap.Steering = cs.input.Steering()
	}
	snap.Metrics = cs.statusReg.Summary()
	cs.snapshot.Store(snap)

	select {
	case cs.updated <- struct{}{}:
	default:
	}
}
