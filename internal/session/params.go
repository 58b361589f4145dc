package session

import (
	"strconv"
	"time"

	"golife/internal/core"
)

// ParamInterval is the HUD key for the generation interval in milliseconds.
const ParamInterval = "interval_ms"

// Parameters describes the board and playback for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	if s.phase != PhaseRunning {
		return core.ParameterSnapshot{
			Groups: []core.ParameterGroup{{
				Name: "Board",
				Params: []core.Parameter{
					textParam("w", "Width", s.menu.Digits(FieldWidth)),
					textParam("h", "Height", s.menu.Digits(FieldHeight)),
					textParam("focus", "Editing", s.menu.Focus().String()),
				},
			}},
		}
	}
	stats := s.Stats()
	state := "paused"
	if s.playback.Running() {
		state = "running"
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Board",
				Params: []core.Parameter{
					intParam("w", "Width", s.grid.Width()),
					intParam("h", "Height", s.grid.Height()),
					intParam("generation", "Generation", stats.Generation),
					intParam("population", "Population", stats.Population),
				},
			},
			{
				Name: "Playback",
				Params: []core.Parameter{
					textParam("state", "State", state),
					intParam(ParamInterval, "Interval (ms)", int(s.playback.Interval()/time.Millisecond)),
				},
			},
		},
	}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	cfg := s.opts.Playback.normalized()
	return []core.ParameterControl{{
		Key:   ParamInterval,
		Label: "Interval (ms)",
		Step:  int(cfg.IntervalStep / time.Millisecond),
		Min:   int(cfg.MinInterval / time.Millisecond),
		Max:   int(cfg.MaxInterval / time.Millisecond),
	}}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	if s.phase != PhaseRunning {
		return false
	}
	switch key {
	case ParamInterval:
		return s.playback.SetInterval(time.Duration(value) * time.Millisecond)
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
