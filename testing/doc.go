// Package testing provides test utilities for hostelmatch.
//
// It offers an embedded NATS server with JetStream for publisher tests, a
// KV bucket helper, and small roster builders so table-driven tests can
// describe students in one line. It follows Go's convention of shipping test
// helpers in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: single NATS server with JetStream
//   - CreateJetStreamKV: in-memory KV bucket on that server
//   - NewStudent / Roster: compact roster construction
//   - NewTestLogger: types.Logger backed by testing.TB
//
// Example usage:
//
//	import (
//	    "testing"
//	    hmtest "github.com/arloliu/hostelmatch/testing"
//	)
//
//	func TestPublish(t *testing.T) {
//	    _, nc := hmtest.StartEmbeddedNATS(t)
//	    kv := hmtest.CreateJetStreamKV(t, nc, "allocations")
//	    // publish into kv
//	}
package testing
