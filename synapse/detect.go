// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

// Detector emits discrete spike events when a sampled presynaptic
// voltage crosses its threshold strictly upward. It is a two-state
// machine (below / above threshold): exactly one event per upward
// crossing regardless of how often the voltage is re-sampled on the
// same side, and no event on downward crossings.
type Detector struct {

	// threshold voltage, in volts
	Thresh float32

	// current state: true while the last sample was above threshold
	Above bool `edit:"-"`

	// emission times of all spikes since the last Init
	Times []float32 `edit:"-"`

	// endpoints this detector sends spikes to
	Ends []*Endpoint
}

// NewDetector returns a detector with the given threshold voltage.
func NewDetector(thresh float32) *Detector {
	return &Detector{Thresh: thresh}
}

// Connect adds an endpoint that receives this detector's spikes.
func (sd *Detector) Connect(ep *Endpoint) {
	sd.Ends = append(sd.Ends, ep)
}

// Sample feeds one voltage sample at simulation time t. On a strict
// upward threshold crossing it records the spike time and sends it to
// every connected endpoint, returning true; otherwise it returns false.
func (sd *Detector) Sample(vm, t float32) bool {
	if sd.Above {
		if vm < sd.Thresh {
			sd.Above = false
		}
		return false
	}
	if vm <= sd.Thresh {
		return false
	}
	sd.Above = true
	sd.Times = append(sd.Times, t)
	for _, ep := range sd.Ends {
		ep.Send(t)
	}
	return true
}

// Init resets the crossing state and clears recorded spike times.
// Connected endpoints are not cleared here -- they belong to their
// synaptic channel, whose Init drops pending events.
func (sd *Detector) Init() {
	sd.Above = false
	sd.Times = sd.Times[:0]
}
