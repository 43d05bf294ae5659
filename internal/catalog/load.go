package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a catalog file from disk, validates it, and returns the catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lumenerrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes and validates catalog YAML. path is only used for error messages.
func Parse(path string, data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, lumenerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return New(file.Name, file.Categories, file.Slides, file.Items), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
