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

import (
	"fmt"
	"io"
	"strings"

	"github.com/claudio-db/defIE/util/graphviz"
)

// WriteDot writes a Graphviz rendering of the graph. Semantic nodes are
// drawn as boxes labeled with their text fragment and sense; word nodes
// as plain ellipses.
func (ssg *SynSemGraph) WriteDot(w io.Writer) {
	fmt.Fprintf(w, "graph {\n")
	fmt.Fprintf(w, "  rankdir=LR;\n")
	for _, n := range ssg.Nodes() {
		switch n := n.(type) {
		case *SemanticNode:
			fmt.Fprintf(w, "  %s [shape=box, label=%q];\n",
				dotID(n), n.TextFragment(false)+"\n"+n.Sense())
		default:
			fmt.Fprintf(w, "  %s [label=%q];\n", dotID(n), n.Token().Surface)
		}
	}
	for _, e := range ssg.Edges() {
		fmt.Fprintf(w, "  %s -- %s [label=%q];\n", dotID(e.Source), dotID(e.Target), e.Type)
	}
	fmt.Fprintf(w, "}\n")
}

// CreateImage renders the graph to an image file using the dot program.
func (ssg *SynSemGraph) CreateImage(filename string) error {
	return graphviz.Create(filename, func(w io.Writer) {
		ssg.WriteDot(w)
	}, graphviz.Options{})
}

// dotID builds a stable Graphviz identifier for a node from its token
// position and a semantic marker.
func dotID(n Node) string {
	prefix := "w"
	if _, ok := n.(*SemanticNode); ok {
		prefix = "s"
	}
	surface := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, n.Token().Surface)
	return fmt.Sprintf("%s%d_%s", prefix, n.Token().Index, surface)
}
