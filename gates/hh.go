// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gates

import (
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Classic squid giant axon kinetics (Hodgkin & Huxley 1952), expressed
// in SI units: voltages in volts (absolute, resting potential at
// ERestAct), rates in 1/sec. The original paper's expressions are in
// mV relative to rest and 1/msec, hence the conversion factors below.

// ERestAct is the squid axon resting potential the kinetics are
// expressed relative to, in volts.
const ERestAct = float32(-70e-3)

// Standard tabulation range and resolution for the squid kinetics.
const (
	StdVMin  = float32(-100e-3)
	StdVMax  = float32(50e-3)
	StdVDivs = 3000
)

// vrel converts an absolute membrane voltage in volts to mV relative
// to ERestAct, as used in the original rate expressions.
func vrel(v float32) float32 {
	return (v - ERestAct) * 1000
}

// efun computes x / (exp(x) - 1) with the singularity at x = 0 handled
// by its Taylor limit, so tabulation never lands on 0/0.
func efun(x float32) float32 {
	if math32.Abs(x) < 1e-4 {
		return 1 - x/2
	}
	return x / (math32.Exp(x) - 1)
}

// MAlpha is the opening rate of the Na activation gate m, in 1/sec.
func MAlpha(v float32) float32 {
	return 1000 * efun((25-vrel(v))/10)
}

// MBeta is the closing rate of the Na activation gate m, in 1/sec.
func MBeta(v float32) float32 {
	return 4000 * math32.Exp(-vrel(v)/18)
}

// HAlpha is the opening rate of the Na inactivation gate h, in 1/sec.
func HAlpha(v float32) float32 {
	return 70 * math32.Exp(-vrel(v)/20)
}

// HBeta is the closing rate of the Na inactivation gate h, in 1/sec.
func HBeta(v float32) float32 {
	return 1000 / (math32.Exp((30-vrel(v))/10) + 1)
}

// NAlpha is the opening rate of the K activation gate n, in 1/sec.
func NAlpha(v float32) float32 {
	return 100 * efun((10-vrel(v))/10)
}

// NBeta is the closing rate of the K activation gate n, in 1/sec.
func NBeta(v float32) float32 {
	return 125 * math32.Exp(-vrel(v)/80)
}

var (
	stdOnce sync.Once
	stdM    *Table
	stdH    *Table
	stdN    *Table
)

// StdTables returns the shared squid-kinetics tables for m, h, and n,
// tabulated over [StdVMin, StdVMax] with StdVDivs divisions. The tables
// are built once and shared across all cells -- they depend only on the
// voltage range, never on per-instance state.
func StdTables() (m, h, n *Table) {
	stdOnce.Do(func() {
		stdM = errors.Log1(NewTable(MAlpha, MBeta, StdVMin, StdVMax, StdVDivs))
		stdH = errors.Log1(NewTable(HAlpha, HBeta, StdVMin, StdVMax, StdVDivs))
		stdN = errors.Log1(NewTable(NAlpha, NBeta, StdVMin, StdVMax, StdVDivs))
	})
	return stdM, stdH, stdN
}
