// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compart

import (
	"github.com/bnslab/hhsim/gates"
)

// Channel is one voltage-gated ion channel owned by a compartment: a
// maximal conductance, a reversal potential, and the gating variables
// whose product of State^Power gives the open fraction.
type Channel struct {

	// channel name, e.g. Na, K
	Name string

	// maximal conductance, in siemens
	Gbar float32

	// reversal potential, in volts
	Erev float32

	// gating variables, e.g. m^3 h for Na, n^4 for K
	Gates []*gates.Gate
}

// NewChannel returns a channel with the given maximal conductance,
// reversal potential, and gates.
func NewChannel(name string, gbar, erev float32, gts ...*gates.Gate) *Channel {
	return &Channel{Name: name, Gbar: gbar, Erev: erev, Gates: gts}
}

// Conductance returns the instantaneous conductance in siemens:
// Gbar times the product of gate State^Power.
func (ch *Channel) Conductance() float32 {
	g := ch.Gbar
	for _, gt := range ch.Gates {
		g *= gt.Frac()
	}
	return g
}

// Current returns the channel current into the membrane in amps for
// the given membrane voltage: Conductance * (Erev - vm).
func (ch *Channel) Current(vm float32) float32 {
	return ch.Conductance() * (ch.Erev - vm)
}

// Init sets every gate to its steady state at the given voltage.
func (ch *Channel) Init(v float32) {
	for _, gt := range ch.Gates {
		gt.Init(v)
	}
}

// StepGates advances every gate by dt from the given voltage, which
// must be the voltage from the start of the integration step.
func (ch *Channel) StepGates(v, dt float32) {
	for _, gt := range ch.Gates {
		gt.Step(v, dt)
	}
}
