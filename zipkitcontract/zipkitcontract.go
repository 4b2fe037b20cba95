package zipkitcontract

import (
	"iter"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/zipkit"
	"go.llib.dev/zipkit/port/contract"
)

// Sequence is the behavioral contract of a value sequence that zipping can source from.
func Sequence[T any](mk contract.Make[iter.Seq[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the sequence", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("the consumer can stop the iteration early", func(t *testcase.T) {
		assert.NotPanic(t, func() {
			for range subject.Get(t) {
				break
			}
		})
	})

	return s.AsSuite("sequence")
}

// SeqE is the behavioral contract of a failable sequence, such as the outcome of a zip.
func SeqE[T any](mk contract.Make[zipkit.SeqE[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) zipkit.SeqE[T] {
		return mk(t)
	})

	s.Then("values can be collected from the sequence", func(t *testcase.T) {
		vs, err := zipkit.CollectE(subject.Get(t))
		assert.NoError(t, err)
		assert.NotEmpty(t, vs)
	})

	s.Then("the consumer can stop the iteration early", func(t *testcase.T) {
		assert.NotPanic(t, func() {
			for range subject.Get(t) {
				break
			}
		})
	})

	s.Then("an error can only be the sequence's final step", func(t *testcase.T) {
		var failed bool
		for _, err := range subject.Get(t) {
			assert.False(t, failed, "no further step is expected after a failure")
			if err != nil {
				failed = true
			}
		}
	})

	return s.AsSuite("SeqE")
}
