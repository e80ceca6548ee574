// Package output serializes analysis results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/locurasdelsur/Notaspasa/pkg/notaspasa/models"
)

// Format names a serialization of a Result.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, yaml, or text)", s)
	}
}

// ContentType returns the media type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// ToJSON serializes a result to JSON.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}

// ToYAML serializes a result to YAML using the JSON field names.
func ToYAML(res *models.Result) ([]byte, error) {
	// Round-trip through JSON so YAML keys follow the json tags.
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("convert to yaml: %w", err)
	}
	return yaml.Marshal(doc)
}

// Write serializes res in format f to w.
func Write(w io.Writer, res *models.Result, f Format, pretty bool) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatText:
		return WriteText(w, res)
	case FormatYAML:
		data, err = ToYAML(res)
	default:
		data, err = ToJSON(res, pretty)
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
