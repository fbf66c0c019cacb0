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

// Command ispareto simulates reaction-network process metrics from a
// TOML system definition: single evaluations, grid sweeps, and
// diagnostic curve dumps.
package main

import "os"

func main() {
	if err := Root.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
