// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hhsim is the overall repository for a small Hodgkin-Huxley
point-neuron simulation library written in Go.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* nernst: Nernst and Goldman-Hodgkin-Katz equilibrium potentials from
ion concentrations, permeabilities, and temperature.

* gates: voltage-dependent gating-variable kinetics -- alpha/beta rate
functions, precomputed interpolation tables over a voltage range, and
the exact exponential state update, including the classic squid-axon
m, h, n kinetics.

* compart: single isopotential compartments computed as the standard
equivalent RC circuit, with leak, gated ion channels, synaptic channels,
and injected current.

* synapse: chemical synapses -- threshold spike detection, weighted
delay-queue endpoints, and double-exponential conductance channels.

* hhsim: the simulator -- fixed-step deterministic integration loop,
simulation clock, table-backed recording, and a squid-cell factory.

* examples: these compile into runnable programs. examples/twocell wires
two squid cells together with an excitatory synapse and logs the voltage
traces; examples/eqpot sweeps the equilibrium-potential equations.
*/
package hhsim
