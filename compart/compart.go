// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package compart implements a single isopotential membrane compartment
as the standard equivalent RC circuit: membrane capacitance and leak
resistance, voltage-gated ion channels, synaptic channels, and an
injected current. Voltage integration uses the exact exponential
update treating total conductance and driving potential as locally
constant over the step, which is stable for any reasonable dt.
*/
package compart

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"

	"github.com/bnslab/hhsim/synapse"
)

// Compartment is one isopotential membrane patch. All state mutation
// happens in place during Step; there is no allocation in the
// steady-state stepping path.
type Compartment struct {

	// compartment name
	Name string

	// membrane capacitance, in farads
	Cm float32

	// membrane (leak) resistance, in ohms
	Rm float32

	// leak reversal potential, in volts
	Em float32

	// initial membrane voltage set by Init, in volts
	InitVm float32

	// current membrane voltage, in volts
	Vm float32 `edit:"-"`

	// injected current, in amps
	Inject float32

	// allowed range for Vm -- keeps transient excursions inside the
	// tabulated gate range
	VmRange minmax.F32

	// voltage-gated ion channels owned by this compartment
	Chans []*Channel

	// synaptic channels owned by this compartment
	Syns []*synapse.Chan
}

// New returns a compartment with the given passive parameters, with
// Vm set to initVm and the default VmRange.
func New(name string, cm, rm, em, initVm float32) *Compartment {
	cp := &Compartment{Name: name, Cm: cm, Rm: rm, Em: em, InitVm: initVm, Vm: initVm}
	cp.VmRange.Set(-0.1, 0.06)
	return cp
}

// AddChannel appends a voltage-gated channel; the compartment owns it
// exclusively.
func (cp *Compartment) AddChannel(ch *Channel) {
	cp.Chans = append(cp.Chans, ch)
}

// AddSyn appends a synaptic channel; the compartment owns it
// exclusively.
func (cp *Compartment) AddSyn(sc *synapse.Chan) {
	cp.Syns = append(cp.Syns, sc)
}

// Inet returns the net current into the membrane in amps at the given
// voltage: leak + channels + synapses + injection (Kirchhoff balance).
func (cp *Compartment) Inet(vm float32) float32 {
	inet := (cp.Em-vm)/cp.Rm + cp.Inject
	for _, ch := range cp.Chans {
		inet += ch.Current(vm)
	}
	for _, sc := range cp.Syns {
		inet += sc.Current(vm)
	}
	return inet
}

// Step advances the compartment state by dt. The voltage update is the
// exact exponential solution with conductances held at their
// start-of-step values:
//
//	gTot = 1/Rm + sum(g_i)
//	vinf = (Em/Rm + sum(g_i * E_i) + Inject) / gTot
//	Vm'  = vinf + (Vm - vinf) * exp(-dt * gTot / Cm)
//
// then every gate advances from the start-of-step voltage (explicit
// coupling, the standard compartmental ordering), and every synaptic
// kernel decays by dt.
func (cp *Compartment) Step(dt float32) {
	v0 := cp.Vm
	gTot := 1 / cp.Rm
	isum := cp.Em/cp.Rm + cp.Inject
	for _, ch := range cp.Chans {
		g := ch.Conductance()
		gTot += g
		isum += g * ch.Erev
	}
	for _, sc := range cp.Syns {
		g := sc.Conductance()
		gTot += g
		isum += g * sc.Erev
	}
	vinf := isum / gTot
	vm := vinf + (v0-vinf)*math32.Exp(-dt*gTot/cp.Cm)
	cp.Vm = math32.Clamp(vm, cp.VmRange.Min, cp.VmRange.Max)

	for _, ch := range cp.Chans {
		ch.StepGates(v0, dt)
	}
	for _, sc := range cp.Syns {
		sc.StepKernel(dt)
	}
}

// DeliverDue delivers all due spike events on this compartment's
// synaptic channels at the given simulation time.
func (cp *Compartment) DeliverDue(now float32) {
	for _, sc := range cp.Syns {
		sc.DeliverDue(now)
	}
}

// Init resets the compartment to its initial state: Vm = InitVm, every
// gate at steady state for InitVm, synaptic kernels and pending events
// zeroed. Rate tables are not rebuilt.
func (cp *Compartment) Init() {
	cp.Vm = cp.InitVm
	for _, ch := range cp.Chans {
		ch.Init(cp.InitVm)
	}
	for _, sc := range cp.Syns {
		sc.Init()
	}
}
