// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gates

// Gate is one gating variable (e.g., m, h, n) of an ion channel: the
// current open probability plus the shared rate table that drives it.
// A channel's open fraction is the product over its gates of
// State^Power.
type Gate struct {

	// gating variable name, e.g. m, h, n
	Name string

	// integer power this gate contributes to the channel open fraction,
	// e.g. 3 for the m gate of the Na channel (m^3 h)
	Power int

	// current open probability, in [0, 1]
	State float32

	// shared, immutable rate table -- one table serves all gate
	// instances built from the same kinetics and voltage range
	Tab *Table
}

// NewGate returns a gate with the given name, power, and shared table.
// State is left at 0; call Init to set it to steady state.
func NewGate(name string, power int, tab *Table) *Gate {
	return &Gate{Name: name, Power: power, Tab: tab}
}

// Init sets the gate state to its steady-state value at the given
// voltage: alpha / (alpha + beta).
func (gt *Gate) Init(v float32) {
	alpha, beta := gt.Tab.Rates(v)
	if sum := alpha + beta; sum > 0 {
		gt.State = alpha / sum
	} else {
		gt.State = 0
	}
}

// Step advances the gate state by dt using the rates at the given
// voltage (the voltage from the start of the integration step).
func (gt *Gate) Step(v, dt float32) {
	alpha, beta := gt.Tab.Rates(v)
	gt.State = StepState(gt.State, alpha, beta, dt)
}

// Frac returns this gate's contribution to the channel open fraction:
// State raised to Power.
func (gt *Gate) Frac() float32 {
	f := gt.State
	for p := 1; p < gt.Power; p++ {
		f *= gt.State
	}
	return f
}
