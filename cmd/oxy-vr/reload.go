package main

import (
	"github.com/Carmen-Shannon/oxy-vr/engine/config"
)

// reloader hands configs from a watch channel to apply, at most one per frame.
type reloader struct {
	ch    <-chan *config.Config
	apply func(*config.Config)
}

// poll applies a pending config if there is one. A closed channel detaches the reloader.
func (rl *reloader) poll() {
	if rl.ch == nil {
		return
	}
	select {
	case next, ok := <-rl.ch:
		if !ok {
			rl.ch = nil
			return
		}
		if next != nil {
			rl.apply(next)
		}
	default:
	}
}
