// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hhsim

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/bnslab/hhsim/compart"
	"github.com/bnslab/hhsim/gates"
	"github.com/bnslab/hhsim/synapse"
)

func TestSquidRest(t *testing.T) {
	// the leak offset is chosen so the full model rests at ERestAct
	nt := NewNetwork("rest")
	cell := NewSquidCell("cell")
	nt.AddCompartment(cell)
	nt.Run(50e-3)
	if math32.Abs(cell.Vm-gates.ERestAct) > 1e-3 {
		t.Errorf("resting Vm: %v, expected ~%v\n", cell.Vm, gates.ERestAct)
	}
}

func TestSquidFires(t *testing.T) {
	nt := NewNetwork("fire")
	cell := NewSquidCell("cell")
	cell.Inject = 1e-9
	nt.AddCompartment(cell)
	det := synapse.NewDetector(0)
	nt.ConnectSpike(cell, det)
	nt.Run(100e-3)
	if len(det.Times) < 2 {
		t.Fatalf("sustained current step: %d spikes, expected repetitive firing\n", len(det.Times))
	}
	if det.Times[0] <= 0 || det.Times[0] > 50e-3 {
		t.Errorf("first spike at %v, expected within 50 ms\n", det.Times[0])
	}
}

func TestRecorderRows(t *testing.T) {
	nt := NewNetwork("rec")
	cell := NewSquidCell("cell")
	nt.AddCompartment(cell)
	nt.Rec.AddSource("Vm", func() float32 { return cell.Vm })
	nt.Run(10e-3)
	if nt.Rec.Rows() != nt.Ctx.Step {
		t.Errorf("recorded %d rows, took %d steps\n", nt.Rec.Rows(), nt.Ctx.Step)
	}
	if nt.Ctx.Step != 1000 {
		t.Errorf("steps: %d, expected 1000 for 10 ms at 10 us\n", nt.Ctx.Step)
	}
	// first row is the pre-step snapshot at t = 0
	if tm := nt.Rec.Value("Time", 0); tm != 0 {
		t.Errorf("first sample time: %v, expected 0\n", tm)
	}
	if vm := nt.Rec.Value("Vm", 0); math32.Abs(float32(vm)-gates.ERestAct) > 1e-6 {
		t.Errorf("first sample Vm: %v, expected initial %v\n", vm, gates.ERestAct)
	}
}

func TestReinitReproduces(t *testing.T) {
	nt := NewNetwork("repro")
	cell := NewSquidCell("cell")
	cell.Inject = 1e-9
	nt.AddCompartment(cell)
	det := synapse.NewDetector(0)
	nt.ConnectSpike(cell, det)
	nt.Rec.AddSource("Vm", func() float32 { return cell.Vm })

	nt.Run(30e-3)
	rows := nt.Rec.Rows()
	trace := make([]float64, rows)
	for i := 0; i < rows; i++ {
		trace[i] = nt.Rec.Value("Vm", i)
	}
	nspk := len(det.Times)

	nt.Reinit()
	if nt.Ctx.Time != 0 || nt.Ctx.Step != 0 {
		t.Fatalf("clock not reset: t=%v step=%d\n", nt.Ctx.Time, nt.Ctx.Step)
	}
	if nt.Rec.Rows() != 0 {
		t.Fatalf("recorder not truncated: %d rows\n", nt.Rec.Rows())
	}
	if cell.Vm != gates.ERestAct {
		t.Fatalf("Vm not reinitialized: %v\n", cell.Vm)
	}

	nt.Run(30e-3)
	if nt.Rec.Rows() != rows {
		t.Fatalf("second run rows: %d, expected %d\n", nt.Rec.Rows(), rows)
	}
	for i := 0; i < rows; i++ {
		if nt.Rec.Value("Vm", i) != trace[i] {
			t.Fatalf("row %d: %v != %v -- rerun not deterministic\n", i, nt.Rec.Value("Vm", i), trace[i])
		}
	}
	if len(det.Times) != nspk {
		t.Errorf("spikes: %d, expected %d\n", len(det.Times), nspk)
	}
}

// TestTwoCell is the end-to-end case: a presynaptic squid cell driven
// above firing threshold by a sustained current step, connected by a
// delayed excitatory synapse to a passive postsynaptic compartment.
// The postsynaptic deflection must begin no earlier than the first
// spike time plus the transmission delay.
func TestTwoCell(t *testing.T) {
	const (
		delay  = float32(5e-3)
		weight = float32(1)
	)
	nt := NewNetwork("twocell")
	pre := NewSquidCell("pre")
	pre.Inject = 1e-9
	nt.AddCompartment(pre)

	post := compart.New("post", SquidCm, SquidRm, gates.ERestAct, gates.ERestAct)
	nt.AddCompartment(post)

	sc, err := synapse.NewChan("exc", 1e-8, 0, 1e-3, 5e-3)
	if err != nil {
		t.Fatalf("unexpected err: %v\n", err)
	}
	ep, err := synapse.NewEndpoint(weight, delay)
	if err != nil {
		t.Fatalf("unexpected err: %v\n", err)
	}
	sc.Connect(ep)
	post.AddSyn(sc)

	det := synapse.NewDetector(0)
	det.Connect(ep)
	nt.ConnectSpike(pre, det)

	nt.Rec.AddSource("PreVm", func() float32 { return pre.Vm })
	nt.Rec.AddSource("PostVm", func() float32 { return post.Vm })
	nt.Run(100e-3)

	if len(det.Times) < 1 {
		t.Fatalf("presynaptic cell did not fire\n")
	}
	onset := det.Times[0] + delay
	deflected := false
	for i := 0; i < nt.Rec.Rows(); i++ {
		tm := float32(nt.Rec.Value("Time", i))
		dv := math32.Abs(float32(nt.Rec.Value("PostVm", i)) - gates.ERestAct)
		if tm <= onset {
			if dv > 1e-5 {
				t.Fatalf("postsynaptic deflection %v at %v, before onset %v\n", dv, tm, onset)
			}
		} else if dv > 2e-3 {
			deflected = true
		}
	}
	if !deflected {
		t.Errorf("no postsynaptic deflection after onset %v\n", onset)
	}
}
