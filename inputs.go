package nanoengine

import (
	"strings"

	"periph.io/x/conn/v3/gpio"
)

// Buttons is a set of pressed keys.
type Buttons uint8

const (
	ButtonNone  Buttons = 0
	ButtonDown  Buttons = 1 << 0
	ButtonLeft  Buttons = 1 << 1
	ButtonRight Buttons = 1 << 2
	ButtonUp    Buttons = 1 << 3
	ButtonA     Buttons = 1 << 4
	ButtonB     Buttons = 1 << 5
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonDown, "down"},
	{ButtonLeft, "left"},
	{ButtonRight, "right"},
	{ButtonUp, "up"},
	{ButtonA, "a"},
	{ButtonB, "b"},
}

// String returns a readable form of the button set.
func (b Buttons) String() string {
	if b == ButtonNone {
		return "none"
	}
	var names []string
	for _, n := range buttonNames {
		if b&n.b != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}

// ButtonsFunc returns the keys currently pressed.
type ButtonsFunc func() Buttons

// LevelReader is the part of a GPIO input pin read by the keypad.
type LevelReader interface {
	Read() gpio.Level
}

// Inputs polls a key provider.
type Inputs struct {
	buttons ButtonsFunc
}

// ConnectCustomKeys uses fn as the key provider.
func (in *Inputs) ConnectCustomKeys(fn ButtonsFunc) {
	in.buttons = fn
}

// ConnectZKeypad decodes an analog resistor-ladder keypad. read returns the
// raw 10-bit conversion of the keypad line.
func (in *Inputs) ConnectZKeypad(read func() int) {
	in.buttons = func() Buttons { return ZKeypad(read()) }
}

// ZKeypad maps a resistor-ladder reading to the key it represents. The
// keypad has no B key.
func ZKeypad(v int) Buttons {
	switch {
	case v < 100:
		return ButtonRight
	case v < 200:
		return ButtonUp
	case v < 400:
		return ButtonDown
	case v < 600:
		return ButtonLeft
	case v < 800:
		return ButtonA
	}
	return ButtonNone
}

// ConnectGPIOKeypad reads one active-high pin per key, in the order down,
// left, right, up, A, B. nil pins are ignored.
func (in *Inputs) ConnectGPIOKeypad(pins [6]LevelReader) {
	in.buttons = func() Buttons {
		var b Buttons
		for i, p := range pins {
			if p != nil && p.Read() == gpio.High {
				b |= 1 << uint(i)
			}
		}
		return b
	}
}

// Buttons returns the keys currently pressed, or ButtonNone when no provider
// is connected.
func (in *Inputs) Buttons() Buttons {
	if in.buttons == nil {
		return ButtonNone
	}
	return in.buttons()
}

// Pressed reports whether every key of b is pressed.
func (in *Inputs) Pressed(b Buttons) bool {
	return in.Buttons()&b == b
}

// NotPressed reports whether no key of b is pressed.
func (in *Inputs) NotPressed(b Buttons) bool {
	return in.Buttons()&b == 0
}
