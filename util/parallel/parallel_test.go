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

package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InvokeN(t *testing.T) {
	assert := assert.New(t)
	var sum int64
	err := InvokeN(context.Background(), 10, func(ctx context.Context, i int) error {
		atomic.AddInt64(&sum, int64(i))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(int64(45), sum)
}

func Test_InvokeN_FirstError(t *testing.T) {
	boom := errors.New("boom")
	err := InvokeN(context.Background(), 5, func(ctx context.Context, i int) error {
		if i == 3 {
			return boom
		}
		<-ctx.Done()
		return nil
	})
	assert.Equal(t, boom, err)
}

func Test_Batches(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Batches(0, 4))
	assert.Equal([]Batch{{0, 10}}, Batches(10, 0))
	assert.Equal([]Batch{{0, 4}, {4, 8}, {8, 10}}, Batches(10, 4))
	assert.Equal([]Batch{{0, 4}}, Batches(4, 4))
}

func Test_InvokeBatched(t *testing.T) {
	assert := assert.New(t)
	var covered [10]int32
	err := InvokeBatched(context.Background(), len(covered), 3, func(ctx context.Context, b Batch) error {
		for i := b.Start; i < b.End; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
		return nil
	})
	require.NoError(t, err)
	for i, count := range covered {
		assert.Equal(int32(1), count, "index %d", i)
	}
}

func Test_GoCaptureError(t *testing.T) {
	boom := errors.New("boom")
	wait := GoCaptureError(func() error {
		return boom
	})
	assert.Equal(t, boom, wait())
	assert.Equal(t, boom, wait())
}
