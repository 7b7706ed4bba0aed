package types

import "strconv"

// String renders a change on one line without fmt, e.g.
// "btn_a button pressed=true @100".
func (c Change) String() string {
	b := make([]byte, 0, 64)
	b = append(b, c.ID...)
	b = append(b, ' ')
	b = append(b, string(c.Kind)...)
	switch v := c.Payload.(type) {
	case ButtonValue:
		b = append(b, " pressed="...)
		b = strconv.AppendBool(b, v.Pressed)
	case PotentiometerValue:
		b = appendKV(b, "value", v.Value)
		b = appendKV(b, "raw", v.Raw)
	case JoystickValue:
		b = append(b, " dir="...)
		b = append(b, v.Directions...)
		b = appendKV(b, "x", v.X)
		b = appendKV(b, "y", v.Y)
		b = appendKV(b, "dx", v.DX)
		b = appendKV(b, "dy", v.DY)
	}
	b = append(b, " @"...)
	b = strconv.AppendUint(b, uint64(c.TSms), 10)
	return string(b)
}

func appendKV(b []byte, k string, v int) []byte {
	b = append(b, ' ')
	b = append(b, k...)
	b = append(b, '=')
	return strconv.AppendInt(b, int64(v), 10)
}
