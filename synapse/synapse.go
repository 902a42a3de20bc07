// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synapse implements chemical synapses between point neurons:
threshold spike detection on the presynaptic voltage, weighted
delay-queue endpoints, and a double-exponential (biexponential)
conductance channel on the postsynaptic side.

The conductance kernel has independent rise (Tau1) and decay (Tau2)
time constants and is normalized so that a single delivered spike of
weight 1 produces a unit peak open fraction at
tpeak = (Tau1*Tau2)/(Tau2-Tau1) * ln(Tau2/Tau1).
*/
package synapse

import (
	"errors"
	"fmt"
	"sort"

	"cogentcore.org/core/math32"
)

// ErrDomain is returned (wrapped, with context) for invalid synapse
// parameters: degenerate or non-positive time constants, negative delay.
var ErrDomain = errors.New("synapse: domain error")

// Event is one pending spike delivery on an endpoint queue.
type Event struct {

	// simulation time at which the event is delivered (spike time + delay)
	At float32

	// synaptic weight applied to the kernel state at delivery
	Weight float32

	// global arrival sequence, for insertion-order tie-breaking
	seq int
}

// Endpoint is one presynaptic input converging onto a synaptic channel:
// a weight, a transmission delay, and the queue of pending deliveries.
// Many endpoints may feed one channel.
type Endpoint struct {

	// synaptic weight: scales the kernel increment per delivered spike.
	// Sign passes through unvalidated -- inhibition is normally modeled
	// with a positive weight and a hyperpolarizing reversal potential,
	// but a negative weight convention also works.
	Weight float32

	// transmission delay from spike emission to delivery, in sec
	Delay float32

	queue []Event
	ch    *Chan // set by Chan.Connect; supplies the arrival sequence
	nseq  int   // fallback sequence for an unconnected endpoint
}

// NewEndpoint returns an endpoint with the given weight and delay.
func NewEndpoint(weight, delay float32) (*Endpoint, error) {
	if delay < 0 {
		return nil, fmt.Errorf("%w: delay must be >= 0, got %g", ErrDomain, delay)
	}
	return &Endpoint{Weight: weight, Delay: delay}, nil
}

// Send enqueues delivery of a spike emitted at time t, arriving at
// t + Delay. The per-endpoint queue stays time-ordered because the
// delay is constant.
func (ep *Endpoint) Send(t float32) {
	seq := ep.nseq
	ep.nseq++
	if ep.ch != nil { // channel-wide arrival order for cross-endpoint ties
		seq = ep.ch.nseq
		ep.ch.nseq++
	}
	ep.queue = append(ep.queue, Event{At: t + ep.Delay, Weight: ep.Weight, seq: seq})
}

// Pending returns the number of queued, undelivered events.
func (ep *Endpoint) Pending() int {
	return len(ep.queue)
}

// Init drops all pending events.
func (ep *Endpoint) Init() {
	ep.queue = ep.queue[:0]
	ep.nseq = 0
}

// Chan is a synaptic conductance channel: like a gated ion channel, but
// its open fraction is driven by a double-exponential kernel triggered
// by delivered spike events instead of by voltage-dependent gates.
type Chan struct {

	// channel name
	Name string

	// maximal conductance, in siemens: a unit-weight spike peaks at Gbar
	Gbar float32

	// reversal potential, in volts
	Erev float32

	// rise time constant, in sec
	Tau1 float32

	// decay time constant, in sec -- must differ from Tau1 (use a
	// single-exponential model for the degenerate case)
	Tau2 float32

	// kernel normalization so the unit response peaks at exactly 1
	Norm float32 `edit:"-"`

	// X is the fast kernel state (Tau1)
	X float32 `edit:"-"`

	// Y is the slow kernel state (Tau2)
	Y float32 `edit:"-"`

	// current open fraction = Norm * (Y - X)
	Gsyn float32 `edit:"-"`

	// converging presynaptic endpoints
	Ends []*Endpoint

	nseq int // channel-wide arrival sequence counter
}

// NewChan returns a synaptic channel with the given maximal
// conductance, reversal potential, and kernel time constants, with the
// peak normalization precomputed.
func NewChan(name string, gbar, erev, tau1, tau2 float32) (*Chan, error) {
	if tau1 <= 0 || tau2 <= 0 {
		return nil, fmt.Errorf("%w: time constants must be positive, got tau1=%g tau2=%g", ErrDomain, tau1, tau2)
	}
	if tau1 == tau2 {
		return nil, fmt.Errorf("%w: tau1 == tau2 (%g) is a degenerate kernel -- use a single-exponential model", ErrDomain, tau1)
	}
	sc := &Chan{Name: name, Gbar: gbar, Erev: erev, Tau1: tau1, Tau2: tau2}
	tp := sc.PeakTime()
	sc.Norm = 1 / (math32.Exp(-tp/tau2) - math32.Exp(-tp/tau1))
	return sc, nil
}

// PeakTime returns the time after a single delivery at which the
// kernel reaches its peak: (Tau1*Tau2)/(Tau2-Tau1) * ln(Tau2/Tau1).
func (sc *Chan) PeakTime() float32 {
	return (sc.Tau1 * sc.Tau2) / (sc.Tau2 - sc.Tau1) * math32.Log(sc.Tau2/sc.Tau1)
}

// Connect adds a converging endpoint feeding this channel.
func (sc *Chan) Connect(ep *Endpoint) {
	ep.ch = sc
	sc.Ends = append(sc.Ends, ep)
}

// DeliverDue pops every queued event across all endpoints whose
// delivery time is <= now, ordered by delivery time with ties broken by
// arrival order, increments the kernel state by each event's weight at
// the moment of delivery, and returns the delivered weights in order.
func (sc *Chan) DeliverDue(now float32) []float32 {
	var due []Event
	for _, ep := range sc.Ends {
		nd := 0
		for _, ev := range ep.queue {
			if ev.At > now {
				break
			}
			nd++
		}
		if nd == 0 {
			continue
		}
		due = append(due, ep.queue[:nd]...)
		n := copy(ep.queue, ep.queue[nd:])
		ep.queue = ep.queue[:n]
	}
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].At != due[j].At {
			return due[i].At < due[j].At
		}
		return due[i].seq < due[j].seq
	})
	wts := make([]float32, len(due))
	for i, ev := range due {
		sc.X += ev.Weight
		sc.Y += ev.Weight
		wts[i] = ev.Weight
	}
	return wts
}

// StepKernel decays both kernel states by dt and updates the open
// fraction:
//
//	X -= X * dt / Tau1
//	Y -= Y * dt / Tau2
//	Gsyn = Norm * (Y - X)
func (sc *Chan) StepKernel(dt float32) {
	sc.X -= sc.X * dt / sc.Tau1
	sc.Y -= sc.Y * dt / sc.Tau2
	sc.Gsyn = sc.Norm * (sc.Y - sc.X)
}

// Conductance returns the instantaneous conductance in siemens.
func (sc *Chan) Conductance() float32 {
	return sc.Gbar * sc.Gsyn
}

// Current returns the synaptic current into the membrane in amps, for
// the given membrane voltage.
func (sc *Chan) Current(vm float32) float32 {
	return sc.Conductance() * (sc.Erev - vm)
}

// Init zeroes the kernel state and drops all pending events on the
// converging endpoints. The normalization is retained.
func (sc *Chan) Init() {
	sc.X = 0
	sc.Y = 0
	sc.Gsyn = 0
	sc.nseq = 0
	for _, ep := range sc.Ends {
		ep.Init()
	}
}
