// Package modeltest checks that service models survive the shared JSON codec.
package modeltest

import (
	"reflect"
	"testing"

	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Case is one model value to round-trip.
type Case struct {
	Name  string
	Model interface{}
}

// RoundTrip encodes model with watson.MarshalModel, decodes the result into a
// new value of the same type with watson.UnmarshalModel and fails the test if
// the two differ.
func RoundTrip(t *testing.T, model interface{}) {
	t.Helper()

	data, err := watson.MarshalModel(model)
	require.NoError(t, err)

	decoded := reflect.New(reflect.TypeOf(model))

	err = watson.UnmarshalModel(data, decoded.Interface())
	require.NoError(t, err, "decoding %s", data)

	if diff := cmp.Diff(model, decoded.Elem().Interface()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// Run round-trips every case in its own subtest.
func Run(t *testing.T, cases []Case) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			RoundTrip(t, tc.Model)
		})
	}
}
