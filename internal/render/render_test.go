package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/dawaclient/internal/dawa"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestAddresses(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		addrs    []dawa.Address
		expected string
	}{
		{
			name:     "none",
			addrs:    nil,
			expected: "Found 0 address(es)\n\n",
		},
		{
			name:     "one",
			addrs:    []dawa.Address{{DisplayLabel: "Rentemestervej 8, st., 2400 København NV"}},
			expected: "Found 1 address(es)\n\nRentemestervej 8, st., 2400 København NV\n",
		},
		{
			name: "keeps order",
			addrs: []dawa.Address{
				{DisplayLabel: "Rentemestervej 8, 2. tv, 2400 København NV", RoadName: "ignored"},
				{DisplayLabel: "Rentemestervej 8, 1. th, 2400 København NV"},
			},
			expected: "Found 2 address(es)\n\n" +
				"Rentemestervej 8, 2. tv, 2400 København NV\n" +
				"Rentemestervej 8, 1. th, 2400 København NV\n",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			require.NoError(t, Addresses(out, tc.addrs))
			require.Equal(t, tc.expected, out.String())
		})
	}
}

func TestAddresses_WriteError(t *testing.T) {
	t.Parallel()

	err := Addresses(failingWriter{}, []dawa.Address{{DisplayLabel: "x"}})

	require.EqualError(t, err, "disk full")
}
