package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
//
// The "Make" function should be called only once per test case,
// and must be capable of creating the subject value on its own.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a role interface specification, also known as "contract".
//
// A contract expresses the behavioral expectations a consumer has towards its supplier.
// The expectations are not bound to a concrete technology,
// so any supplier implementation can prove itself against them.
type Contract interface {
	testcase.Suite
	// Test is the function that asserts expected behavioral requirements from a supplier implementation.
	Test(*testing.T)
	// Benchmark will help with what to measure.
	Benchmark(*testing.B)
}
