// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nernst

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-4)

func TestPotentialEqualConcs(t *testing.T) {
	// equal concentrations => zero potential, for any valence and temperature
	for _, z := range []int{-2, -1, 1, 2, 3} {
		for _, c := range []float32{1e-3, 0.15, 400} {
			ev, err := Potential(z, c, c, 310.15)
			if err != nil {
				t.Errorf("z: %v, c: %v, unexpected err: %v\n", z, c, err)
			}
			if ev != 0 {
				t.Errorf("z: %v, c: %v, ev: %v, expected 0\n", z, c, ev)
			}
		}
	}
}

func TestPotentialK(t *testing.T) {
	// typical mammalian K+ gradient at body temperature
	ev, err := Potential(1, 140e-3, 5e-3, 310.15)
	if err != nil {
		t.Fatalf("unexpected err: %v\n", err)
	}
	cor := float32(-0.0890)
	if math32.Abs(ev-cor) > difTol {
		t.Errorf("ev: %v, cor: %v, dif: %v\n", ev, cor, math32.Abs(ev-cor))
	}
}

func TestPotentialSpecies(t *testing.T) {
	io := &IonSpecies{Valence: 1, CIn: 140e-3, COut: 5e-3}
	ev, err := io.Potential(310.15)
	if err != nil {
		t.Fatalf("unexpected err: %v\n", err)
	}
	// species method must track concentration updates, never cache
	io.COut = 140e-3
	ev2, err := io.Potential(310.15)
	if err != nil {
		t.Fatalf("unexpected err: %v\n", err)
	}
	if ev == ev2 || ev2 != 0 {
		t.Errorf("ev: %v, ev2: %v -- potential not recomputed from updated concentrations\n", ev, ev2)
	}
}

func TestPotentialErrs(t *testing.T) {
	cases := []struct {
		z         int
		cIn, cOut float32
		tempK     float32
	}{
		{0, 140e-3, 5e-3, 310.15}, // zero valence
		{1, 0, 5e-3, 310.15},      // zero inside conc
		{1, 140e-3, -5e-3, 310.15},
		{1, 140e-3, 5e-3, 0},
	}
	for _, cs := range cases {
		_, err := Potential(cs.z, cs.cIn, cs.cOut, cs.tempK)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("case %+v: expected ErrDomain, got: %v\n", cs, err)
		}
	}
}

func TestGHKVoltage(t *testing.T) {
	// squid axon parameters from Johnston & Wu, Foundations of Cellular
	// Neurophysiology, at 20 C
	perm := []float32{1, 0.03, 0.1}
	cIn := []float32{400, 50, 40} // K, Na, Cl
	cOut := []float32{10, 460, 540}
	val := []int{1, 1, -1}
	ev, err := GHKVoltage(perm, cIn, cOut, val, 293.15)
	if err != nil {
		t.Fatalf("unexpected err: %v\n", err)
	}
	cor := float32(-0.0706)
	if math32.Abs(ev-cor) > difTol {
		t.Errorf("ev: %v, cor: %v, dif: %v\n", ev, cor, math32.Abs(ev-cor))
	}
}

func TestGHKVoltageErrs(t *testing.T) {
	perm := []float32{1, 0.03}
	cIn := []float32{400, 50, 40}
	cOut := []float32{10, 460, 540}
	val := []int{1, 1, -1}
	if _, err := GHKVoltage(perm, cIn, cOut, val, 293.15); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain for mismatched lengths, got: %v\n", err)
	}
	perm = []float32{1, 0.03, 0.1}
	val = []int{1, 0, -1}
	if _, err := GHKVoltage(perm, cIn, cOut, val, 293.15); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain for zero valence, got: %v\n", err)
	}
	val = []int{1, 1, -1}
	if _, err := GHKVoltage(perm, cIn, cOut, val, -1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain for negative temperature, got: %v\n", err)
	}
}
