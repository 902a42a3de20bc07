// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hhsim provides the simulator core: a deterministic
single-threaded fixed-step integration loop over a set of
compartments, spike detection links between them, table-backed
recording, and the simulation clock.
*/
package hhsim

import (
	"github.com/bnslab/hhsim/compart"
	"github.com/bnslab/hhsim/synapse"
)

// SpikeLink binds a spike detector to the compartment whose voltage it
// samples. The detector's endpoints carry the spikes onward to their
// synaptic channels.
type SpikeLink struct {

	// presynaptic compartment whose voltage is sampled
	From *compart.Compartment

	// threshold detector fed by From's voltage each step
	Det *synapse.Detector
}

// Network is the full model: the set of compartments advanced
// synchronously by the integration loop, the spike links between them,
// and the recorder. There is exactly one mutator (the loop itself), so
// no locking is needed; parameter updates are only valid between runs.
type Network struct {

	// network name
	Name string

	// all compartments, stepped in order each cycle
	Comps []*compart.Compartment

	// spike detection links from compartments to synaptic endpoints
	Links []*SpikeLink

	// per-step state recording; nil disables recording
	Rec *Recorder

	// timing state and parameters
	Ctx Context
}

// NewNetwork returns an empty network with default timing parameters
// and a recorder named after the network.
func NewNetwork(name string) *Network {
	nt := &Network{Name: name, Rec: NewRecorder(name)}
	nt.Ctx.Defaults()
	return nt
}

// AddCompartment adds a compartment to the network.
func (nt *Network) AddCompartment(cp *compart.Compartment) {
	nt.Comps = append(nt.Comps, cp)
}

// ConnectSpike attaches a spike detector to the given compartment's
// voltage. Wire the detector to synaptic channels via
// Detector.Connect / Chan.Connect endpoints.
func (nt *Network) ConnectSpike(from *compart.Compartment, det *synapse.Detector) *SpikeLink {
	lk := &SpikeLink{From: from, Det: det}
	nt.Links = append(nt.Links, lk)
	return lk
}

// Cycle advances the whole network by one integration step, in the
// fixed order: sample voltages into detectors and the recorder
// (pre-step snapshot), deliver due synaptic events, step every
// compartment, advance the clock. Every update within the step reads
// only pre-step state, so the result is independent of compartment
// order.
func (nt *Network) Cycle() {
	now := nt.Ctx.Time
	for _, lk := range nt.Links {
		lk.Det.Sample(lk.From.Vm, now)
	}
	if nt.Rec != nil {
		nt.Rec.Record(now)
	}
	for _, cp := range nt.Comps {
		cp.DeliverDue(now)
	}
	dt := nt.Ctx.TimePerStep
	for _, cp := range nt.Comps {
		cp.Step(dt)
	}
	nt.Ctx.StepInc()
}

// Run advances the network from the current clock over the given
// duration in seconds, in fixed steps of Ctx.TimePerStep. Stopping
// early (running a shorter duration) is always safe: each cycle is
// atomic with respect to the recorder snapshot taken at its start.
func (nt *Network) Run(simtime float32) {
	n := int(simtime/nt.Ctx.TimePerStep + 0.5)
	for i := 0; i < n; i++ {
		nt.Cycle()
	}
}

// Reinit resets all state to initial values without rebuilding any
// rate tables: clock to zero, compartments to their initial voltage
// with gates at steady state, synaptic kernels and event queues
// cleared, detectors reset, recorder truncated.
func (nt *Network) Reinit() {
	nt.Ctx.Reset()
	for _, cp := range nt.Comps {
		cp.Init()
	}
	for _, lk := range nt.Links {
		lk.Det.Init()
	}
	if nt.Rec != nil {
		nt.Rec.Reset()
	}
}
