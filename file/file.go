package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// LoadProgression reads a progression document. .json files are JSON,
// anything else is YAML. A null slot is a rest.
func LoadProgression(path string) (model.Progression, error) {
	var p model.Progression
	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "reading progression")
	}
	if isJSON(path) {
		err = json.Unmarshal(data, &p)
	} else {
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		return p, errors.Wrapf(err, "parsing progression %s", path)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

func SaveProgression(path string, p model.Progression) error {
	var data []byte
	var err error
	if isJSON(path) {
		data, err = json.MarshalIndent(p, "", "  ")
	} else {
		data, err = yaml.Marshal(p)
	}
	if err != nil {
		return errors.Wrap(err, "encoding progression")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing progression %s", path)
}
