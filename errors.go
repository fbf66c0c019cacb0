/*
Copyright © 2025 the IS-Pareto authors.
This file is part of IS-Pareto.

IS-Pareto is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

IS-Pareto is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with IS-Pareto.  If not, see <http://www.gnu.org/licenses/>.
*/

package ispareto

import "fmt"

// ConfigError indicates invalid construction parameters: an
// unrecognized tunneling kind, a reaction missing reactants or a
// transition state, or a reaction list containing nil elements.
// Construction-time errors abort system setup; no partially
// configured system is usable.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

// ConfigErrorf creates a new ConfigError.
func ConfigErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// DataError indicates that referenced species data (a geometry or
// frequency file, or a solvation table) is missing, unreadable, or
// malformed.
type DataError struct {
	msg string
	err error
}

func (e *DataError) Error() string { return e.msg }

// Unwrap returns the underlying cause, if any.
func (e *DataError) Unwrap() error { return e.err }

// DataErrorf creates a new DataError.
func DataErrorf(format string, args ...interface{}) *DataError {
	return &DataError{msg: fmt.Sprintf(format, args...)}
}

// WrapDataError creates a DataError wrapping err.
func WrapDataError(err error, format string, args ...interface{}) *DataError {
	return &DataError{
		msg: fmt.Sprintf(format, args...) + ": " + err.Error(),
		err: err,
	}
}

// LookupError indicates that a required species or reaction is absent
// from a precomputed cache at evaluation time. Given construction-time
// validation this should be unreachable; it exists so that a miss is
// reported instead of silently producing a zero rate.
type LookupError struct {
	msg string
}

func (e *LookupError) Error() string { return e.msg }

// LookupErrorf creates a new LookupError.
func LookupErrorf(format string, args ...interface{}) *LookupError {
	return &LookupError{msg: fmt.Sprintf(format, args...)}
}

// SimulationError indicates that ODE integration failed to converge or
// that a metric computation produced a non-finite result. Step and
// Time locate the failure within the integration window; both are
// zero when the failure happened during metric extraction.
type SimulationError struct {
	Step int
	Time float64
	msg  string
}

func (e *SimulationError) Error() string {
	if e.Step > 0 {
		return fmt.Sprintf("%s (step %d, t=%g s)", e.msg, e.Step, e.Time)
	}
	return e.msg
}

// SimulationErrorf creates a new SimulationError without step context.
func SimulationErrorf(format string, args ...interface{}) *SimulationError {
	return &SimulationError{msg: fmt.Sprintf(format, args...)}
}
