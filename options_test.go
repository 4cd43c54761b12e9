package greedytable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/greedytable/model"
)

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := ParseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultOptions(), opts)
	assert.Equal(t, model.BiasRight, opts.Bias)
	assert.Nil(t, opts.Widths)
}

func TestParseOptions_AllKeys(t *testing.T) {
	opts, err := ParseOptions(map[string]string{
		"header-rows":  "2",
		"stub-columns": " 1 ",
		"widths":       "10 20  70",
		"bias":         "left",
		"class":        "Compact  big_table",
		"name":         "Main Table",
	})
	require.NoError(t, err)

	assert.Equal(t, Options{
		HeaderRows:  2,
		StubColumns: 1,
		Widths:      []int{10, 20, 70},
		Bias:        model.BiasLeft,
		Classes:     []string{"compact", "big-table"},
		Name:        "Main Table",
	}, opts)
}

func TestParseOptions_Errors(t *testing.T) {
	tests := []struct {
		name   string
		bag    map[string]string
		option string
	}{
		{"negative header rows", map[string]string{"header-rows": "-1"}, "header-rows"},
		{"non-numeric stub columns", map[string]string{"stub-columns": "two"}, "stub-columns"},
		{"empty header rows", map[string]string{"header-rows": ""}, "header-rows"},
		{"zero width", map[string]string{"widths": "10 0"}, "widths"},
		{"negative width", map[string]string{"widths": "10,-5"}, "widths"},
		{"empty widths", map[string]string{"widths": "  "}, "widths"},
		{"trailing comma", map[string]string{"widths": "10,20,"}, "widths"},
		{"bad bias", map[string]string{"bias": "centre"}, "bias"},
		{"empty class", map[string]string{"class": ""}, "class"},
		{"unusable class", map[string]string{"class": "ok 123"}, "class"},
		{"unknown option", map[string]string{"align": "center"}, "align"},
		{"first sorted key wins", map[string]string{"widths": "x", "bias": "up"}, "bias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.bag)
			var oe *OptionError
			require.True(t, errors.As(err, &oe), "got %v", err)
			assert.Equal(t, tt.option, oe.Option)
		})
	}
}

func TestParseOptions_BiasErrorIsTyped(t *testing.T) {
	_, err := ParseOptions(map[string]string{"bias": "middle"})
	var biasErr *model.InvalidBiasError
	require.True(t, errors.As(err, &biasErr))
	assert.Equal(t, "middle", biasErr.Value)
}

func TestParseOptions_UnknownOption(t *testing.T) {
	_, err := ParseOptions(map[string]string{"colour": "red"})
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.Equal(t, `unknown option: "colour"`, err.Error())
}

func TestPositiveIntList(t *testing.T) {
	tests := []struct {
		value string
		want  []int
	}{
		{"1", []int{1}},
		{"1 2 3", []int{1, 2, 3}},
		{"1,2,3", []int{1, 2, 3}},
		{" 4 , 5 ", []int{4, 5}},
		{"\t7\n8", []int{7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := positiveIntList(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"simple", "simple"},
		{"CamelCase", "camelcase"},
		{"with_underscore", "with-underscore"},
		{"a--b", "a-b"},
		{"9lives", "lives"},
		{"-lead", "lead"},
		{"trail-", "trail"},
		{"x.y:z", "x-y-z"},
		{"123", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, makeID(tt.in))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "my table", normalizeName("  My\n\tTable "))
	assert.Equal(t, "", normalizeName("   "))
}

func TestOptionsClone(t *testing.T) {
	orig := Options{Widths: []int{1, 2}, Classes: []string{"a"}}
	c := orig.clone()
	c.Widths[0] = 9
	c.Classes[0] = "z"
	assert.Equal(t, 1, orig.Widths[0])
	assert.Equal(t, "a", orig.Classes[0])
	assert.Nil(t, defaultOptions().clone().Widths)
}
