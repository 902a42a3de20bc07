// Copyright (c) 2025, The HHSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hhsim

import "cogentcore.org/core/tensor/table"

// Recorder samples named scalar fields into a data table, one row per
// integration step. Sources are read-only views onto model state
// (voltage, conductance, etc.); the table has a leading Time column
// plus one float64 column per source.
type Recorder struct {

	// the recorded data: Time plus one column per source
	Table *table.Table

	cols []string
	srcs []func() float32
}

// NewRecorder returns a recorder with an empty table holding only the
// Time column.
func NewRecorder(name string) *Recorder {
	rc := &Recorder{Table: &table.Table{}}
	rc.Table.SetMetaData("name", name)
	rc.Table.AddFloat64Column("Time")
	return rc
}

// AddSource registers a named scalar source, sampled once per step.
// All sources must be added before the first Record call.
func (rc *Recorder) AddSource(name string, src func() float32) {
	rc.Table.AddFloat64Column(name)
	rc.cols = append(rc.cols, name)
	rc.srcs = append(rc.srcs, src)
}

// Record appends one row sampled from all sources at the given time.
func (rc *Recorder) Record(tm float32) {
	row := rc.Table.Rows
	rc.Table.SetNumRows(row + 1)
	rc.Table.SetFloat("Time", row, float64(tm))
	for i, src := range rc.srcs {
		rc.Table.SetFloat(rc.cols[i], row, float64(src()))
	}
}

// Value returns the recorded value of the named column at the given row.
func (rc *Recorder) Value(name string, row int) float64 {
	return rc.Table.Float(name, row)
}

// Rows returns the number of recorded samples.
func (rc *Recorder) Rows() int {
	return rc.Table.Rows
}

// Reset truncates the recorded rows, keeping the column schema.
func (rc *Recorder) Reset() {
	rc.Table.SetNumRows(0)
}
