package api_test

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// fails the run when any test leaks a goroutine; exits with m.Run's code
	goleak.VerifyTestMain(m)
}
