package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/haliteviz/animation"
	"github.com/lixenwraith/haliteviz/audio"
	"github.com/lixenwraith/haliteviz/clock"
	"github.com/lixenwraith/haliteviz/config"
	"github.com/lixenwraith/haliteviz/events"
	"github.com/lixenwraith/haliteviz/input"
	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/playback"
	"github.com/lixenwraith/haliteviz/render"
	"github.com/lixenwraith/haliteviz/replay"
	"github.com/lixenwraith/haliteviz/status"
)

// viewer wires the controller to the terminal
type viewer struct {
	cfg      config.Config
	screen   tcell.Screen
	ctrl     *playback.Controller
	renderer *render.Renderer
	keys     *input.KeyTable
	dispatch *input.Dispatcher
	cues     *audio.CuePlayer
	frames   *clock.FrameClock
	tickStat *status.AtomicFloat
	log      *logrus.Entry
}

func run(cfg config.Config, path string) error {
	log := logger.For("main")

	r, err := replay.Load(path)
	if err != nil {
		return err
	}

	v := &viewer{cfg: cfg, keys: input.DefaultKeyTable(), log: log}

	var sink animation.CueSink
	if cfg.Audio {
		v.cues = audio.NewCuePlayer(cfg.Volume)
		if err := v.cues.Init(); err != nil {
			// Non-fatal, playback runs silent
			log.WithError(err).Warn("audio unavailable")
			v.cues = nil
		} else {
			sink = v.cues
			defer v.cues.Close()
		}
	}

	reg := status.NewRegistry()
	bus := events.NewBus()
	bus.Subscribe(eventLogger{log: logger.For("events")})

	v.ctrl, err = playback.New(r,
		playback.WithConfig(cfg),
		playback.WithBus(bus),
		playback.WithRegistry(reg),
		playback.WithCues(sink),
	)
	if err != nil {
		return err
	}
	v.tickStat = reg.Floats.Get(status.MetricTickDelta)

	v.screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer v.screen.Fini()

	// Panic recovery: restore the terminal before reporting a crash
	defer func() {
		if rec := recover(); rec != nil {
			v.screen.Fini()
			log.WithField("panic", rec).Error("viewer crashed")
			fmt.Fprintf(os.Stderr, "\nHALITEVIZ CRASHED: %v\nStack Trace:\n%s\n", rec, debug.Stack())
			os.Exit(1)
		}
	}()

	v.screen.EnableMouse()
	v.screen.HideCursor()

	v.renderer = render.NewRenderer(v.screen)
	v.dispatch = input.NewDispatcher(v.ctrl, v.pick, v.toggleMute)
	v.frames = clock.NewFrameClock(clock.NewMonotonicTimeProvider(), parameter.TickInterval, cfg.MaxTick)

	if cfg.Autoplay {
		v.ctrl.Play()
	}

	log.WithFields(logrus.Fields{
		"frames":  r.FrameCount(),
		"players": r.NumPlayers,
		"speed":   v.ctrl.PlaySpeed(),
	}).Info("playback started")

	v.loop()
	return nil
}

// loop drives the controller once per frame interval and handles input between ticks
func (v *viewer) loop() {
	ticker := time.NewTicker(v.cfg.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	idle := false
	v.renderer.Draw(v.ctrl)

	for {
		select {
		case ev := <-eventChan:
			in := v.keys.Translate(ev)
			if in.Type == input.IntentResize {
				v.screen.Sync()
			}
			if v.dispatch.Apply(in) {
				return
			}
			if idle {
				v.frames.Reset()
				idle = false
			}
			v.renderer.Draw(v.ctrl)

		case <-ticker.C:
			// Nothing animates while paused with an empty queue
			if v.ctrl.Idle() {
				idle = true
				continue
			}
			if idle {
				v.frames.Reset()
				idle = false
			}

			dt := v.frames.Tick()
			v.tickStat.Set(dt)
			v.ctrl.Tick(dt)
			v.renderer.Draw(v.ctrl)
		}
	}
}

func (v *viewer) pick(col, row int) (replay.EntityRef, bool) {
	return v.renderer.HitTest(v.ctrl, col, row)
}

func (v *viewer) toggleMute() {
	if v.cues == nil {
		return
	}
	muted := v.cues.ToggleMute()
	v.log.WithField("muted", muted).Info("audio toggled")
}

// eventLogger records playback notifications
type eventLogger struct {
	log *logrus.Entry
}

func (l eventLogger) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPlay, events.EventPause, events.EventEnd,
		events.EventSelect, events.EventDeselect,
	}
}

func (l eventLogger) HandleEvent(ev events.Event) {
	entry := l.log.WithFields(logrus.Fields{"frame": ev.Frame, "sub_time": ev.SubTime})
	switch ev.Type {
	case events.EventSelect, events.EventDeselect:
		entry.WithField("entity", ev.Entity.String()).Debug(ev.Type.String())
	default:
		entry.Info(ev.Type.String())
	}
}
