// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nernst computes single-ion Nernst equilibrium potentials and the
multi-ion Goldman-Hodgkin-Katz (GHK) membrane voltage from ion
concentrations, relative permeabilities, and absolute temperature.
All functions are pure and use SI units (volts, kelvin); concentrations
only enter as ratios, so any consistent unit works -- unit consistency
is the caller's responsibility and is not validated.
*/
package nernst

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Physical constants (SI).
const (
	// R is the molar gas constant, in J / (mol * K).
	R = 8.314462618

	// Faraday is the Faraday constant, in C / mol.
	Faraday = 96485.33212
)

// ErrDomain is returned (wrapped, with context) for physically invalid
// inputs: non-positive concentrations or temperature, zero valence,
// mismatched permeability / concentration lists.
var ErrDomain = errors.New("nernst: domain error")

// IonSpecies holds the state of one ion species across the membrane.
// It is immutable during an integration step; concentrations may be
// updated externally between runs to track dynamic equilibria.
type IonSpecies struct {

	// ion valence, e.g. +1 for K+ and Na+, -1 for Cl-, +2 for Ca++
	Valence int

	// intracellular concentration, in any unit consistent with COut
	CIn float32

	// extracellular concentration, in any unit consistent with CIn
	COut float32
}

// Potential returns the Nernst equilibrium potential for this species
// at the given absolute temperature. The value is recomputed on every
// call so it is always consistent with the current concentrations.
func (io *IonSpecies) Potential(tempK float32) (float32, error) {
	return Potential(io.Valence, io.CIn, io.COut, tempK)
}

// Potential returns the Nernst equilibrium potential in volts:
//
//	E = -(R*T)/(z*F) * ln(cIn / cOut)
//
// for valence z, inside / outside concentrations, and absolute
// temperature in kelvin.
func Potential(valence int, cIn, cOut, tempK float32) (float32, error) {
	if valence == 0 {
		return 0, fmt.Errorf("%w: valence must be non-zero", ErrDomain)
	}
	if cIn <= 0 || cOut <= 0 {
		return 0, fmt.Errorf("%w: concentrations must be positive, got cIn=%g cOut=%g", ErrDomain, cIn, cOut)
	}
	if tempK <= 0 {
		return 0, fmt.Errorf("%w: temperature must be positive kelvin, got %g", ErrDomain, tempK)
	}
	rtzf := (R * tempK) / (float32(valence) * Faraday)
	return -rtzf * math32.Log(cIn/cOut), nil
}

// GHKVoltage returns the Goldman-Hodgkin-Katz membrane voltage in volts
// for a list of monovalent ion species given by parallel slices of
// relative permeability, inside and outside concentration, and valence.
// The valence sign tags each species: cations (z > 0) contribute
// P*cOut to the numerator and P*cIn to the denominator, anions (z < 0)
// the reverse. The result is (R*T/F) * ln(num / den).
func GHKVoltage(perm, cIn, cOut []float32, valence []int, tempK float32) (float32, error) {
	n := len(perm)
	if len(cIn) != n || len(cOut) != n || len(valence) != n {
		return 0, fmt.Errorf("%w: mismatched lengths: perm=%d cIn=%d cOut=%d valence=%d", ErrDomain, n, len(cIn), len(cOut), len(valence))
	}
	if tempK <= 0 {
		return 0, fmt.Errorf("%w: temperature must be positive kelvin, got %g", ErrDomain, tempK)
	}
	var num, den float32
	for i := 0; i < n; i++ {
		switch {
		case valence[i] > 0:
			num += perm[i] * cOut[i]
			den += perm[i] * cIn[i]
		case valence[i] < 0:
			num += perm[i] * cIn[i]
			den += perm[i] * cOut[i]
		default:
			return 0, fmt.Errorf("%w: species %d has zero valence", ErrDomain, i)
		}
	}
	if num <= 0 || den <= 0 {
		return 0, fmt.Errorf("%w: log argument must be positive, got num=%g den=%g", ErrDomain, num, den)
	}
	return (R * tempK / Faraday) * math32.Log(num/den), nil
}
