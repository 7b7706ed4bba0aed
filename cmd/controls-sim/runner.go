package main

import (
	"fmt"
	"log/slog"

	"controls-go/platform"
	"controls-go/services/panel"
	"controls-go/types"
)

// pollEvery matches the MCU command's loop period.
const pollEvery = 10

type runner struct {
	sim     *platform.Sim
	panel   *panel.Panel
	log     *slog.Logger
	begun   bool
	changes []types.Change
}

func newRunner(cfg types.PanelConfig, log *slog.Logger) (*runner, error) {
	sim := platform.NewSim()
	if err := attachMuxes(sim, cfg); err != nil {
		return nil, err
	}
	p, err := panel.New(sim, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("panel built", "controls", p.Len(), "multiplexers", len(cfg.Multiplexers))
	return &runner{sim: sim, panel: p, log: log}, nil
}

// muxRoute is the subset of control params that places it on a mux.
type muxRoute struct {
	Pin    int    `json:"pin"`
	Signal int    `json:"signal"`
	Mux    string `json:"mux"`
}

// attachMuxes wires a simulated mux onto every signal pin the layout routes
// through one. Digital channels idle high, as pulled-up inputs do.
func attachMuxes(sim *platform.Sim, cfg types.PanelConfig) error {
	sel := make(map[string][4]int, len(cfg.Multiplexers))
	for _, m := range cfg.Multiplexers {
		sel[m.ID] = m.Select
	}
	seen := map[int]bool{}
	for _, cs := range cfg.Controls {
		r, err := panel.DecodeParams[muxRoute](cs)
		if err != nil {
			return err
		}
		s, ok := sel[r.Mux]
		if r.Mux == "" || !ok {
			continue
		}
		sig := r.Pin
		if cs.Type == types.KindJoystick {
			sig = r.Signal
		}
		if seen[sig] {
			continue
		}
		seen[sig] = true
		sim.AttachMux(sig, s[0], s[1], s[2], s[3])
		for ch := uint8(0); ch < 16; ch++ {
			sim.SetMuxLevel(sig, ch, true)
		}
	}
	return nil
}

func (r *runner) runAll(steps []step) error {
	for _, s := range steps {
		if err := r.exec(s); err != nil {
			return fmt.Errorf("line %d: %s: %w", s.line, s.op, err)
		}
	}
	return nil
}

func (r *runner) exec(s step) error {
	switch s.op {
	case "begin":
		r.begin()
	case "set":
		pin, err := parseInts(s.args[:1])
		if err != nil {
			return err
		}
		lvl, err := parseLevel(s.args[1])
		if err != nil {
			return err
		}
		r.sim.SetLevel(pin[0], lvl)
	case "analog":
		v, err := parseInts(s.args)
		if err != nil {
			return err
		}
		r.sim.SetAnalog(v[0], v[1])
	case "mux-set":
		v, err := parseInts(s.args[:2])
		if err != nil {
			return err
		}
		lvl, err := parseLevel(s.args[2])
		if err != nil {
			return err
		}
		r.sim.SetMuxLevel(v[0], uint8(v[1]), lvl)
	case "mux-analog":
		v, err := parseInts(s.args)
		if err != nil {
			return err
		}
		r.sim.SetMuxAnalog(v[0], uint8(v[1]), v[2])
	case "wait":
		ms, err := parseMs(s.args[0])
		if err != nil {
			return err
		}
		r.sim.Advance(ms)
	case "poll":
		r.begin()
		r.poll()
	case "run":
		ms, err := parseMs(s.args[0])
		if err != nil {
			return err
		}
		r.begin()
		for t := uint32(0); t+pollEvery <= ms; t += pollEvery {
			r.sim.Advance(pollEvery)
			r.poll()
		}
	default:
		return fmt.Errorf("unknown op")
	}
	return nil
}

// begin initialises the panel once; inputs set before it form the resting
// state (joystick centres in particular).
func (r *runner) begin() {
	if r.begun {
		return
	}
	r.panel.Begin()
	r.begun = true
	r.log.Debug("begin", "t", r.sim.Millis())
}

func (r *runner) poll() {
	cs := r.panel.Poll()
	r.log.Debug("poll", "t", r.sim.Millis(), "changes", len(cs))
	for _, c := range cs {
		r.log.Info("change", "id", c.ID, "kind", string(c.Kind), "ts", c.TSms, "payload", c.Payload)
	}
	r.changes = append(r.changes, cs...)
}

func parseMs(s string) (uint32, error) {
	v, err := parseInts([]string{s})
	if err != nil {
		return 0, err
	}
	if v[0] < 0 {
		return 0, fmt.Errorf("negative duration %d", v[0])
	}
	return uint32(v[0]), nil
}
