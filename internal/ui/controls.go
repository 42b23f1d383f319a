package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"islandfire/internal/core"
)

const (
	defaultFloatStep = 0.05
	floatEpsilon     = 1e-9
	missingValue     = "--"
)

// ControlState tracks one HUD control and the last value read back from the
// simulation.
type ControlState struct {
	Control core.ParameterControl
	Value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewControlStates wraps controls with empty values.
func NewControlStates(controls []core.ParameterControl) []ControlState {
	states := make([]ControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = ControlState{Control: ctrl, Value: missingValue}
	}
	return states
}

// HasValue reports whether the last refresh found a parsable value.
func (s *ControlState) HasValue() bool { return s.hasValue }

// Refresh parses the current value of the control out of snap.
func (s *ControlState) Refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.Value = missingValue
	param, ok := snap.Lookup(s.Control.Key)
	if !ok {
		return
	}
	switch s.Control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.Value = strconv.Itoa(parsed)
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.Value = FormatStep(s.Control.Step, parsed)
	default:
		return
	}
	s.hasValue = true
}

// Target returns the clamped value one step in direction, and whether it
// differs from the current value.
func (s *ControlState) Target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	ctrl := s.Control
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		target := s.intValue + direction*step
		if ctrl.HasMin {
			target = max(target, int(math.Round(ctrl.Min)))
		}
		if ctrl.HasMax {
			target = min(target, int(math.Round(ctrl.Max)))
		}
		return float64(target), target != s.intValue
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = defaultFloatStep
		}
		target := s.floatValue + float64(direction)*step
		if ctrl.HasMin && target < ctrl.Min {
			target = ctrl.Min
		}
		if ctrl.HasMax && target > ctrl.Max {
			target = ctrl.Max
		}
		return target, math.Abs(target-s.floatValue) >= floatEpsilon
	}
	return 0, false
}

// Adjust steps the control through the matching setter. Setters may be nil.
func (s *ControlState) Adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	target, ok := s.Target(direction)
	if !ok {
		return false
	}
	switch s.Control.Type {
	case core.ParamTypeInt:
		v := int(target)
		if ints == nil || !ints.SetIntParameter(s.Control.Key, v) {
			return false
		}
		s.intValue = v
		s.floatValue = target
		s.Value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(s.Control.Key, target) {
			return false
		}
		s.floatValue = target
		s.Value = FormatStep(s.Control.Step, target)
	default:
		return false
	}
	return true
}

// FormatStep prints value with as many decimals as step needs.
func FormatStep(step, value float64) string {
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// FireStatus is implemented by simulations that report burn progress.
type FireStatus interface {
	BurnPercentage() float64
	Exhausted() bool
	ActiveFires() int
}

// StatusLines summarizes sim for the top of the panel.
func StatusLines(sim core.Sim, paused bool) []string {
	if sim == nil {
		return nil
	}
	size := sim.Size()
	lines := []string{fmt.Sprintf("Grid %dx%d", size.W, size.H)}
	if fs, ok := sim.(FireStatus); ok {
		lines = append(lines, fmt.Sprintf("Burned %.1f%%", fs.BurnPercentage()*100))
		if fs.Exhausted() {
			lines = append(lines, "Fire out")
		} else {
			lines = append(lines, fmt.Sprintf("Burning %d", fs.ActiveFires()))
		}
	}
	if paused {
		lines = append(lines, "Paused")
	}
	return lines
}

// Title builds the panel heading from the simulation name.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[n:]) + " Controls"
}
