package lawcheck

import (
	"math/rand"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func TestInteger_coversBothSigns(t *testing.T) {
	s := testcase.NewSpec(t)

	sample := testcase.Let(s, func(t *testcase.T) *Sample {
		return &Sample{Random: random.New(rand.NewSource(int64(t.Random.Int())))}
	})

	s.Test("int", func(t *testcase.T) {
		var neg, pos bool
		for range 256 {
			v := integer[int](sample.Get(t))
			neg, pos = neg || v < 0, pos || 0 <= v
		}
		assert.True(t, neg)
		assert.True(t, pos)
	})

	s.Test("int64", func(t *testcase.T) {
		var neg bool
		for range 256 {
			neg = neg || integer[int64](sample.Get(t)) < 0
		}
		assert.True(t, neg)
	})

	s.Test("int8 reaches negative values", func(t *testcase.T) {
		var neg bool
		for range 256 {
			neg = neg || integer[int8](sample.Get(t)) < 0
		}
		assert.True(t, neg)
	})
}
