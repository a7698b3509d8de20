// Copyright 2016 The DefIE Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import "math"

// Edge is a typed dependency edge. Edges are stored with the parser's
// head as Source and dependent as Target, but the graph itself is
// undirected: traversal may cross an edge either way.
type Edge struct {
	Type   string
	Source Node
	Target Node
}

// Weight returns the cost of crossing the edge from one endpoint to the
// other. Crossing left to right in sentence order costs 1; crossing
// right to left is forbidden (infinite). This keeps mined paths reading
// in the direction of the text.
func (e Edge) Weight(from, to Node) float64 {
	if from.Token().Index < to.Token().Index {
		return 1.0
	}
	return math.Inf(1)
}

// Other returns the endpoint of the edge opposite to n, and whether n is
// actually one of the endpoints.
func (e Edge) Other(n Node) (Node, bool) {
	switch n {
	case e.Source:
		return e.Target, true
	case e.Target:
		return e.Source, true
	}
	return nil, false
}

func (e Edge) String() string {
	return " ---" + e.Type + "--- "
}
