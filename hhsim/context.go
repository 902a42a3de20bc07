// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hhsim

import "github.com/emer/emergent/v2/etime"

// Context contains the timing state and parameters for running a model.
type Context struct {

	// accumulated amount of time the model has been running,
	// in simulation-time (not real world time), in seconds
	Time float32

	// step counter: number of integration steps taken since Reset
	Step int

	// amount of time to increment per step, in seconds
	TimePerStep float32 `def:"1e-05"`

	// current evaluation mode, e.g., Train, Test, etc
	Mode etime.Modes
}

// NewContext returns a new Context with default parameters.
func NewContext() *Context {
	ctx := &Context{}
	ctx.Defaults()
	return ctx
}

// Defaults sets default values
func (ctx *Context) Defaults() {
	ctx.TimePerStep = 1e-5
}

// Reset resets the counters all back to zero
func (ctx *Context) Reset() {
	ctx.Time = 0
	ctx.Step = 0
	if ctx.TimePerStep == 0 {
		ctx.Defaults()
	}
}

// StepInc increments at the step level
func (ctx *Context) StepInc() {
	ctx.Step++
	ctx.Time += ctx.TimePerStep
}
