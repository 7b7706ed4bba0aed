// Package panel assembles named controls and their shared multiplexers
// from a PanelConfig and polls them as one unit.
package panel

import (
	"controls-go/controls"
	"controls-go/errcode"
	"controls-go/types"
)

type entry struct {
	id   string
	kind types.Kind
	in   controls.Input
}

// Panel owns a set of controls built from one layout. It is polled from a
// single goroutine, like the controls it holds.
type Panel struct {
	hal     controls.Platform
	muxes   map[string]*controls.Multiplexer
	entries []entry
	index   map[string]int
}

// New builds every multiplexer and control in cfg. The first invalid entry
// aborts construction.
func New(hal controls.Platform, cfg types.PanelConfig) (*Panel, error) {
	const op = "panel.New"
	p := &Panel{
		hal:   hal,
		muxes: make(map[string]*controls.Multiplexer, len(cfg.Multiplexers)),
		index: make(map[string]int, len(cfg.Controls)),
	}

	for _, ms := range cfg.Multiplexers {
		if ms.ID == "" {
			return nil, errcode.Wrap(errcode.InvalidParams, op, "multiplexer without id", nil)
		}
		if _, dup := p.muxes[ms.ID]; dup {
			return nil, errcode.Wrap(errcode.DuplicateID, op, ms.ID, nil)
		}
		for _, pin := range ms.Select {
			if pin < 0 {
				return nil, errcode.Wrap(errcode.InvalidParams, op, ms.ID+": select pin", nil)
			}
		}
		enable := controls.NoPin
		if ms.Enable != nil {
			enable = *ms.Enable
		}
		if enable < 0 && enable != controls.NoPin {
			return nil, errcode.Wrap(errcode.InvalidParams, op, ms.ID+": enable pin", nil)
		}
		s := ms.Select
		p.muxes[ms.ID] = controls.NewMultiplexer(hal, s[0], s[1], s[2], s[3], enable)
	}

	for _, cs := range cfg.Controls {
		if cs.ID == "" {
			return nil, errcode.Wrap(errcode.InvalidParams, op, "control without id", nil)
		}
		if _, dup := p.index[cs.ID]; dup {
			return nil, errcode.Wrap(errcode.DuplicateID, op, cs.ID, nil)
		}
		b, ok := lookupBuilder(cs.Type)
		if !ok {
			return nil, errcode.Wrap(errcode.UnknownType, op, cs.ID+": "+string(cs.Type), nil)
		}
		in, err := b.Build(BuildInput{ID: cs.ID, Params: cs.Params, HAL: hal, Muxes: p.muxes})
		if err != nil {
			return nil, err
		}
		p.index[cs.ID] = len(p.entries)
		p.entries = append(p.entries, entry{id: cs.ID, kind: cs.Type, in: in})
	}
	return p, nil
}

// Begin initialises every control in layout order.
func (p *Panel) Begin() {
	for _, e := range p.entries {
		e.in.Begin()
	}
}

// Poll reads every control once, in layout order, and returns one Change
// per control whose Read reported a change. It returns nil when nothing
// changed.
func (p *Panel) Poll() []types.Change {
	var out []types.Change
	for _, e := range p.entries {
		if !e.in.Read() {
			continue
		}
		out = append(out, types.Change{
			ID:      e.id,
			Kind:    e.kind,
			TSms:    e.in.LastChange(),
			Payload: snapshot(e.in),
		})
	}
	return out
}

// Snapshot returns the current value of control id without reading it.
func (p *Panel) Snapshot(id string) (any, error) {
	in, ok := p.Control(id)
	if !ok {
		return nil, errcode.Wrap(errcode.UnknownControl, "panel.Snapshot", id, nil)
	}
	return snapshot(in), nil
}

func snapshot(in controls.Input) any {
	switch c := in.(type) {
	case *controls.Button:
		return types.ButtonValue{Pressed: c.IsPressed()}
	case *controls.Potentiometer:
		return types.PotentiometerValue{Value: c.Value(), Raw: c.RawValue()}
	case *controls.Joystick:
		return types.JoystickValue{
			X: c.X(), Y: c.Y(),
			DX: c.DeltaX(), DY: c.DeltaY(),
			Directions: c.Directions().String(),
		}
	default:
		return nil
	}
}

// ---- Lookups ----

// Control returns the control registered under id.
func (p *Panel) Control(id string) (controls.Input, bool) {
	i, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return p.entries[i].in, true
}

// Kind returns the configured type of control id.
func (p *Panel) Kind(id string) (types.Kind, bool) {
	i, ok := p.index[id]
	if !ok {
		return "", false
	}
	return p.entries[i].kind, true
}

func (p *Panel) Button(id string) (*controls.Button, error) {
	return lookup[*controls.Button](p, id, "panel.Button")
}

func (p *Panel) Potentiometer(id string) (*controls.Potentiometer, error) {
	return lookup[*controls.Potentiometer](p, id, "panel.Potentiometer")
}

func (p *Panel) Joystick(id string) (*controls.Joystick, error) {
	return lookup[*controls.Joystick](p, id, "panel.Joystick")
}

func lookup[T controls.Input](p *Panel, id, op string) (T, error) {
	var zero T
	in, ok := p.Control(id)
	if !ok {
		return zero, errcode.Wrap(errcode.UnknownControl, op, id, nil)
	}
	c, ok := in.(T)
	if !ok {
		return zero, errcode.Wrap(errcode.WrongKind, op, id, nil)
	}
	return c, nil
}

// Multiplexer returns the multiplexer configured under id.
func (p *Panel) Multiplexer(id string) (*controls.Multiplexer, bool) {
	m, ok := p.muxes[id]
	return m, ok
}

// IDs returns control ids in layout order.
func (p *Panel) IDs() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.id
	}
	return out
}

func (p *Panel) Len() int { return len(p.entries) }
