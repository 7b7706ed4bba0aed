package types

import "testing"

func TestChangeString(t *testing.T) {
	cases := []struct {
		in   Change
		want string
	}{
		{Change{ID: "btn_a", Kind: KindButton, TSms: 100, Payload: ButtonValue{Pressed: true}},
			"btn_a button pressed=true @100"},
		{Change{ID: "volume", Kind: KindPotentiometer, TSms: 7, Payload: PotentiometerValue{Value: 63, Raw: 511}},
			"volume potentiometer value=63 raw=511 @7"},
		{Change{ID: "stick", Kind: KindJoystick, TSms: 4294967295, Payload: JoystickValue{X: 900, Y: 100, DX: 388, DY: -412, Directions: "right+up"}},
			"stick joystick dir=right+up x=900 y=100 dx=388 dy=-412 @4294967295"},
		{Change{ID: "odd", Kind: "slider"}, "odd slider @0"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}
