package moneypkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePositive(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "Integer", input: "100", want: "100.00"},
		{name: "OneDecimal", input: "0.5", want: "0.50"},
		{name: "TwoDecimals", input: "12.34", want: "12.34"},
		{name: "LeadingWhitespace", input: " 7 ", want: "7.00"},
		{name: "ThreeDecimals", input: "0.105", wantErr: ErrInvalid},
		{name: "NotANumber", input: "!@#$", wantErr: ErrInvalid},
		{name: "Empty", input: "", wantErr: ErrInvalid},
		{name: "Zero", input: "0", wantErr: ErrNotPositive},
		{name: "Negative", input: "-1", wantErr: ErrNotPositive},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePositive(tc.input)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeNonNegative(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "Zero", input: "0", want: "0.00"},
		{name: "Positive", input: "42.1", want: "42.10"},
		{name: "ThreeDecimals", input: "1.001", wantErr: ErrInvalid},
		{name: "NotANumber", input: "four", wantErr: ErrInvalid},
		{name: "Negative", input: "-0.01", wantErr: ErrNegative},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeNonNegative(tc.input)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
