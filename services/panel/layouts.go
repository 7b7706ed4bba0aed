package panel

import (
	"sort"

	"controls-go/errcode"
	"controls-go/services/panel/internal/util"
	"controls-go/types"
)

// -----------------------------------------------------------------------------
// Embedded layouts
//
// Key: board name. Val: raw JSON for a types.PanelConfig.
// -----------------------------------------------------------------------------

// Four buttons, a potentiometer and a joystick with its push switch, all
// on direct pins.
const layoutPico = `{
  "controls": [
    {"id": "btn_a",   "type": "button",        "params": {"pin": 2}},
    {"id": "btn_b",   "type": "button",        "params": {"pin": 3}},
    {"id": "btn_c",   "type": "button",        "params": {"pin": 4}},
    {"id": "btn_d",   "type": "button",        "params": {"pin": 5}},
    {"id": "volume",  "type": "potentiometer", "params": {"pin": 26, "resolution": 127}},
    {"id": "stick",   "type": "joystick",      "params": {"pin_x": 27, "pin_y": 28}},
    {"id": "stick_sw","type": "button",        "params": {"pin": 6, "debounce_ms": 40}}
  ]
}`

// Two 16-channel multiplexers sharing select lines GP10..GP13: one analogue
// (signal GP26, enable GP14) carrying faders and a joystick, one digital
// (signal GP15) carrying buttons.
const layoutPicoMux = `{
  "multiplexers": [
    {"id": "analog", "select": [10, 11, 12, 13], "enable": 14},
    {"id": "keys",   "select": [10, 11, 12, 13]}
  ],
  "controls": [
    {"id": "fader_1", "type": "potentiometer", "params": {"pin": 26, "mux": "analog", "channel": 0, "resolution": 127}},
    {"id": "fader_2", "type": "potentiometer", "params": {"pin": 26, "mux": "analog", "channel": 1, "resolution": 127}},
    {"id": "fader_3", "type": "potentiometer", "params": {"pin": 26, "mux": "analog", "channel": 2, "resolution": 127}},
    {"id": "fader_4", "type": "potentiometer", "params": {"pin": 26, "mux": "analog", "channel": 3, "resolution": 127}},
    {"id": "stick",   "type": "joystick",      "params": {"signal": 26, "mux": "analog", "channel_x": 4, "channel_y": 5}},
    {"id": "key_1",   "type": "button",        "params": {"pin": 15, "mux": "keys", "channel": 0}},
    {"id": "key_2",   "type": "button",        "params": {"pin": 15, "mux": "keys", "channel": 1}},
    {"id": "key_3",   "type": "button",        "params": {"pin": 15, "mux": "keys", "channel": 2}},
    {"id": "key_4",   "type": "button",        "params": {"pin": 15, "mux": "keys", "channel": 3}}
  ]
}`

// ExpanderBase is the first virtual pin of an ADS1115 expander; its four
// inputs appear as pins ExpanderBase..ExpanderBase+3.
const ExpanderBase = 100

// Four faders on an ADS1115 (pins 100..103) and two buttons. I2C0 uses
// GP4/GP5 so the buttons sit elsewhere.
const layoutPicoADS = `{
  "controls": [
    {"id": "fader_1", "type": "potentiometer", "params": {"pin": 100, "resolution": 127, "smoothing": "divisor"}},
    {"id": "fader_2", "type": "potentiometer", "params": {"pin": 101, "resolution": 127, "smoothing": "divisor"}},
    {"id": "fader_3", "type": "potentiometer", "params": {"pin": 102, "resolution": 127, "smoothing": "divisor"}},
    {"id": "fader_4", "type": "potentiometer", "params": {"pin": 103, "resolution": 127, "smoothing": "divisor"}},
    {"id": "shift",   "type": "button",        "params": {"pin": 2}},
    {"id": "enter",   "type": "button",        "params": {"pin": 3}}
  ]
}`

var embeddedLayouts = map[string][]byte{
	"pico":     []byte(layoutPico),
	"pico-mux": []byte(layoutPicoMux),
	"pico-ads": []byte(layoutPicoADS),
}

// EmbeddedLayoutLookup allows overriding how layouts are resolved.
var EmbeddedLayoutLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedLayouts[board]
	return b, ok
}

// EmbeddedLayout decodes the layout built in for board.
func EmbeddedLayout(board string) (types.PanelConfig, error) {
	raw, ok := EmbeddedLayoutLookup(board)
	if !ok || len(raw) == 0 {
		return types.PanelConfig{}, errcode.Wrap(errcode.InvalidParams, "panel.EmbeddedLayout", "no embedded layout for board: "+board, nil)
	}
	return DecodeLayout(raw)
}

// EmbeddedBoards lists the boards with a built-in layout, sorted.
func EmbeddedBoards() []string {
	out := make([]string, 0, len(embeddedLayouts))
	for k := range embeddedLayouts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DecodeLayout decodes a layout from raw JSON or from a generic tree such
// as the map[string]any a YAML loader produces.
func DecodeLayout(src any) (types.PanelConfig, error) {
	var cfg types.PanelConfig
	if err := util.DecodeJSON(src, &cfg); err != nil {
		return types.PanelConfig{}, errcode.Wrap(errcode.InvalidParams, "panel.DecodeLayout", "layout", err)
	}
	if len(cfg.Controls) == 0 {
		return types.PanelConfig{}, errcode.Wrap(errcode.InvalidParams, "panel.DecodeLayout", "no controls", nil)
	}
	return cfg, nil
}

// DecodeParams decodes the params of one control into T.
func DecodeParams[T any](cs types.ControlSpec) (T, error) {
	var v T
	if err := util.DecodeJSON(cs.Params, &v); err != nil {
		return v, errcode.Wrap(errcode.InvalidParams, cs.ID, "params", err)
	}
	return v, nil
}
