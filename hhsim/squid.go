// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hhsim

import (
	"github.com/bnslab/hhsim/compart"
	"github.com/bnslab/hhsim/gates"
)

// Squid demo compartment parameters: a 50 um x 50 um cylindrical patch
// with the classic Hodgkin-Huxley specific membrane properties, in SI
// units. The leak reversal sits 10.613 mV above rest so that the
// resting potential of the full model is exactly ERestAct.
const (
	SquidCm     = float32(7.854e-11) // 0.01 F/m^2 * area
	SquidRm     = float32(4.2441e7)  // 0.333333 ohm m^2 / area
	SquidEm     = gates.ERestAct + 10.613e-3
	SquidENa    = float32(45e-3)
	SquidEK     = float32(-82e-3)
	SquidGbarNa = float32(9.4248e-6) // 1200 S/m^2 * area
	SquidGbarK  = float32(2.8274e-6) // 360 S/m^2 * area
)

// NewSquidCell returns a fresh, fully-initialized squid-axon
// compartment: Na channel gated m^3 h, K channel gated n^4, and the
// demo passive parameters above. All cells share the same immutable
// standard rate tables, so building many cells is cheap. Gates start
// at their steady state for the resting potential.
func NewSquidCell(name string) *compart.Compartment {
	m, h, n := gates.StdTables()
	cp := compart.New(name, SquidCm, SquidRm, SquidEm, gates.ERestAct)
	cp.AddChannel(compart.NewChannel("Na", SquidGbarNa, SquidENa,
		gates.NewGate("m", 3, m), gates.NewGate("h", 1, h)))
	cp.AddChannel(compart.NewChannel("K", SquidGbarK, SquidEK,
		gates.NewGate("n", 4, n)))
	cp.Init()
	return cp
}
