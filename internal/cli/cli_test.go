package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/specialistvlad/dawaclient/internal/dawa"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectUsage    bool
		expectedStreet string
		expectedHouse  string
	}{
		{name: "no arguments", args: nil, expectUsage: true},
		{name: "street only", args: []string{"Rentemestervej"}, expectUsage: true},
		{name: "street and house number", args: []string{"Rentemestervej", "8"}, expectedStreet: "Rentemestervej", expectedHouse: "8"},
		{name: "house number with letter", args: []string{"Rentemestervej", "8A"}, expectedStreet: "Rentemestervej", expectedHouse: "8A"},
		{name: "dash-prefixed values are not flags", args: []string{"-h", "-1"}, expectedStreet: "-h", expectedHouse: "-1"},
		{name: "empty values are accepted", args: []string{"", " "}, expectedStreet: "", expectedHouse: " "},
		{name: "extra arguments ignored", args: []string{"Rentemestervej", "8", "st"}, expectedStreet: "Rentemestervej", expectedHouse: "8"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse(tc.args)

			if tc.expectUsage {
				var usageErr *UsageError
				require.ErrorAs(t, err, &usageErr)
				require.Equal(t, "Usage: dawaclient <street name> <house number>", err.Error())
				require.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedStreet, cfg.StreetName)
			require.Equal(t, tc.expectedHouse, cfg.HouseNumber)
			require.Equal(t, dawa.DefaultBaseURL, cfg.RegistryURL)
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "success", err: nil, expected: 0},
		{name: "usage", err: &UsageError{Usage: Usage}, expected: 2},
		{name: "wrapped usage", err: fmt.Errorf("startup: %w", &UsageError{Usage: Usage}), expected: 2},
		{name: "registry", err: &dawa.RegistryError{StatusCode: 404, Body: "no match"}, expected: 1},
		{name: "decode", err: &dawa.DecodeError{Err: errors.New("bad")}, expected: 1},
		{name: "transport", err: &dawa.TransportError{URL: "u", Err: errors.New("refused")}, expected: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}
