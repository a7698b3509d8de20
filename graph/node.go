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

// Package graph models dependency graphs of definitions and their
// syntactic-semantic extension, where disambiguated spans collapse into
// semantic nodes. Paths between semantic nodes are the raw material of
// pattern mining.
package graph

import "github.com/claudio-db/defIE/definition"

// Node is a vertex of a Graph. The two implementations are Word, a plain
// token vertex, and *SemanticNode. Both are valid map keys, so nodes
// compare with ==.
type Node interface {
	// Token returns the token anchoring the node in the sentence. For a
	// semantic node this is its head token.
	Token() definition.Token
	String() string
}

// Word is a plain syntactic vertex wrapping a single token.
type Word struct {
	token definition.Token
}

// NewWord returns the Word vertex for a token.
func NewWord(t definition.Token) Word {
	return Word{token: t}
}

// Token implements Node.
func (w Word) Token() definition.Token {
	return w.token
}

func (w Word) String() string {
	return w.token.Surface
}
