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

package debuglog

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_Configure(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		contains []string
	}{
		{
			name:    "default",
			options: Options{},
			contains: []string{
				" level=info ",
				` msg="Initialized Logrus"`,
				" forceColors=false",
			},
		},
		{
			name:    "default/UTC_timestamp",
			options: Options{},
			contains: []string{
				` UTC"`,
			},
		},
		{
			name:    "default/relative_filenames",
			options: Options{},
			contains: []string{
				` file="util/debuglog/setup.go:`,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf strings.Builder
			logger := logrus.New()
			logger.SetOutput(&buf)
			test.options.Logger = logger
			Configure(test.options)
			out := buf.String()
			for _, want := range test.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func Test_UTCHook(t *testing.T) {
	entry := logrus.NewEntry(logrus.New())
	assert.NoError(t, utcHook{}.Fire(entry))
	assert.Equal(t, entry.Time.Location().String(), "UTC")
}
