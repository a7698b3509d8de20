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

package definition

import "fmt"

// Disambiguation maps a span of tokens to a word sense. Offsets are
// token-based, Start inclusive and End exclusive.
type Disambiguation struct {
	Start      int
	End        int
	SenseID    string
	Confidence float64
}

// Length returns the number of tokens covered by the match.
func (d Disambiguation) Length() int {
	return d.End - d.Start
}

// Overlaps reports whether other starts inside this match's span.
func (d Disambiguation) Overlaps(other Disambiguation) bool {
	return other.Start >= d.Start && other.Start <= d.End
}

// Less orders disambiguations by confidence, then by match length.
func (d Disambiguation) Less(other Disambiguation) bool {
	if d.Confidence != other.Confidence {
		return d.Confidence < other.Confidence
	}
	return d.Length() < other.Length()
}

func (d Disambiguation) String() string {
	return fmt.Sprintf("%d_%d_%s_%g", d.Start, d.End, d.SenseID, d.Confidence)
}
