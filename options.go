package greedytable

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/greedytable/model"
)

// Options holds the directive options of a list table.
type Options struct {
	HeaderRows  int
	StubColumns int
	Widths      []int // nil means even widths
	Bias        model.Bias
	Classes     []string
	Name        string
}

// defaultOptions returns the default directive options.
func defaultOptions() Options {
	return Options{
		HeaderRows:  0,
		StubColumns: 0,
		Widths:      nil,
		Bias:        model.BiasRight,
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := Options{
		HeaderRows:  o.HeaderRows,
		StubColumns: o.StubColumns,
		Bias:        o.Bias,
		Name:        o.Name,
	}

	// Deep copy slices
	if o.Widths != nil {
		newOpts.Widths = make([]int, len(o.Widths))
		copy(newOpts.Widths, o.Widths)
	}
	if o.Classes != nil {
		newOpts.Classes = make([]string, len(o.Classes))
		copy(newOpts.Classes, o.Classes)
	}

	return newOpts
}

var (
	// ErrUnknownOption is wrapped by an OptionError for an unrecognized key.
	ErrUnknownOption = errors.New("unknown option")

	errNegative    = errors.New("negative value; must be positive or zero")
	errNotPositive = errors.New("negative or zero value; must be positive")
	errNoArgument  = errors.New("argument required but none supplied")
)

// optionParsers maps each recognized option to its converter.
var optionParsers = map[string]func(o *Options, value string) error{
	"header-rows": func(o *Options, value string) (err error) {
		o.HeaderRows, err = nonNegativeInt(value)
		return err
	},
	"stub-columns": func(o *Options, value string) (err error) {
		o.StubColumns, err = nonNegativeInt(value)
		return err
	},
	"widths": func(o *Options, value string) (err error) {
		o.Widths, err = positiveIntList(value)
		return err
	},
	"bias": func(o *Options, value string) (err error) {
		o.Bias, err = model.ParseBias(value)
		return err
	},
	"class": func(o *Options, value string) (err error) {
		o.Classes, err = classOption(value)
		return err
	},
	"name": func(o *Options, value string) error {
		o.Name = value
		return nil
	},
}

// ParseOptions converts a directive option bag. Keys are checked in sorted
// order and the first invalid one is reported.
func ParseOptions(bag map[string]string) (Options, error) {
	opts := defaultOptions()

	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parse, ok := optionParsers[key]
		if !ok {
			return Options{}, &OptionError{Option: key, Value: bag[key], Err: ErrUnknownOption}
		}
		if err := parse(&opts, bag[key]); err != nil {
			return Options{}, &OptionError{Option: key, Value: bag[key], Err: err}
		}
	}

	return opts, nil
}

func nonNegativeInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNegative
	}
	return n, nil
}

// positiveIntList accepts comma- or whitespace-separated positive integers.
func positiveIntList(value string) ([]int, error) {
	var fields []string
	if strings.Contains(value, ",") {
		fields = strings.Split(value, ",")
	} else {
		fields = strings.Fields(value)
	}
	if len(fields) == 0 {
		return nil, errNoArgument
	}

	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, errNotPositive
		}
		out[i] = n
	}
	return out, nil
}

// classOption splits value on whitespace and converts each name to an
// identifier.
func classOption(value string) ([]string, error) {
	names := strings.Fields(value)
	if len(names) == 0 {
		return nil, errNoArgument
	}

	classes := make([]string, 0, len(names))
	for _, name := range names {
		id := makeID(name)
		if id == "" {
			return nil, errors.New("cannot make " + strconv.Quote(name) + " into a class name")
		}
		classes = append(classes, id)
	}
	return classes, nil
}

// makeID lower-cases s, replaces runs of characters other than ASCII
// letters and digits with hyphens, and strips leading digits and hyphens
// and trailing hyphens.
func makeID(s string) string {
	var sb strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			hyphen = false
			continue
		}
		if !hyphen {
			sb.WriteByte('-')
			hyphen = true
		}
	}
	id := strings.TrimLeft(sb.String(), "-0123456789")
	return strings.TrimRight(id, "-")
}

// normalizeName lower-cases a reference name and collapses its whitespace.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
