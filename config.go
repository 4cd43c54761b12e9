package greedytable

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var errUnsupportedValue = errors.New("unsupported value type")

// LoadOptions reads directive options from a YAML mapping that uses the
// directive option names as keys:
//
//	header-rows: 1
//	widths: [30, 70]
//	bias: left
//	class: [compact, striped]
//	name: My Table
//
// An empty document yields the default options.
func LoadOptions(r io.Reader) (Options, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return defaultOptions(), nil
		}
		return Options{}, fmt.Errorf("decoding options: %w", err)
	}

	bag := make(map[string]string, len(raw))
	for key, value := range raw {
		s, err := optionString(value)
		if err != nil {
			return Options{}, &OptionError{Option: key, Value: fmt.Sprint(value), Err: err}
		}
		bag[key] = s
	}

	return ParseOptions(bag)
}

// LoadOptionsFile reads directive options from a YAML file.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("opening options file: %w", err)
	}
	defer f.Close()

	return LoadOptions(f)
}

// optionString renders a decoded YAML value in directive option syntax.
// Sequences become whitespace-separated lists.
func optionString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			s, err := optionString(item)
			if err != nil {
				return "", err
			}
			if s == "" || strings.ContainsAny(s, " \t\n") {
				return "", errUnsupportedValue
			}
			parts[i] = s
		}
		return strings.Join(parts, " "), nil
	default:
		return "", errUnsupportedValue
	}
}
