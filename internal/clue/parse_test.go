package clue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"1,2,3", []int{1, 2, 3}},
		{"1 2 3", []int{1, 2, 3}},
		{"1, 2,  3", []int{1, 2, 3}},
		{"\t4 ,5", []int{4, 5}},
		{"1\n2\r\n3", []int{1, 2, 3}},
		{"6 7", []int{6, 7}},
		{"  7  ", []int{7}},
		{"", []int{}},
		{"   ", []int{}},
		{",,,", []int{}},
		{"3,", []int{3}},
		{"0", []int{0}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	for _, in := range []string{"1,x,3", "two", "1.5", "-2"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "want *ParseError for %q", in)
		assert.NotEmpty(t, pe.Token)
	}
}

func TestParseLines(t *testing.T) {
	got, err := ParseLines([]string{"1,1", "", "3"})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1}, {}, {3}}, got)

	_, err = ParseLines([]string{"1", "oops"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}
