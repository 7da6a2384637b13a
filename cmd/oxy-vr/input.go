package main

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"go.uber.org/zap"
)

// gamepadSource is the part of the window the desktop input reads from.
type gamepadSource interface {
	Gamepad(joystick int) (xr.GamepadState, bool)
}

// desktopInput drives a pair of emulated controllers from the keyboard and one joystick slot.
// With the keyboard enabled the controllers stay connected; otherwise they follow the joystick.
// The right stick's Y axis tilts both pointers so teleport can be aimed at the ground.
type desktopInput struct {
	mu          sync.Mutex
	hub         xr.Hub
	left, right xr.Controller
	regs        []xr.Registration
	keys        *xr.KeyboardState
	keyboard    bool
	joystick    int
	deadZone    float32
	aim         xr.EmulatedAim
	logger      *zap.Logger
}

func newDesktopInput(hub xr.Hub, left, right xr.Controller, keyboard bool, joystick int, deadZone float32, logger *zap.Logger) *desktopInput {
	return &desktopInput{
		hub:      hub,
		left:     left,
		right:    right,
		keys:     xr.NewKeyboardState(),
		keyboard: keyboard,
		joystick: joystick,
		deadZone: deadZone,
		aim:      xr.NewEmulatedAim(),
		logger:   logger,
	}
}

func (d *desktopInput) connect() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.regs) > 0 {
		return
	}
	d.regs = []xr.Registration{d.hub.Connect(d.left), d.hub.Connect(d.right)}
}

func (d *desktopInput) disconnect() {
	d.mu.Lock()
	regs := d.regs
	d.regs = nil
	d.mu.Unlock()
	for _, r := range regs {
		r.Release()
	}
}

func (d *desktopInput) connected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.regs) > 0
}

// onJoystick follows hot-plug of the configured joystick slot.
func (d *desktopInput) onJoystick(joystick int, connected bool) {
	if joystick != d.joystick {
		return
	}
	d.logger.Info("joystick hot-plug", zap.Int("joystick", joystick), zap.Bool("connected", connected))
	if d.keyboard {
		return
	}
	if connected {
		d.connect()
	} else {
		d.disconnect()
	}
}

func (d *desktopInput) setDeadZone(v float32) {
	d.mu.Lock()
	d.deadZone = v
	d.mu.Unlock()
}

// frame merges keyboard and joystick state, feeds it to the controllers and updates the pointer tilt.
func (d *desktopInput) frame(src gamepadSource, dt float32) {
	state := xr.RestingGamepadState()
	if d.keyboard {
		state = d.keys.Gamepad()
	}
	if d.joystick >= 0 && src != nil {
		if gp, ok := src.Gamepad(d.joystick); ok {
			state = state.Merge(gp)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	xr.ApplyGamepad(state, d.left, d.right, d.deadZone)

	var pitch float32
	if stick := d.right.Component(xr.ComponentThumbstick); stick != nil {
		pitch = stick.Axes().Y()
	}
	d.aim.Update(pitch, dt, d.left, d.right)
}
