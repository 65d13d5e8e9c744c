package dict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML overlay file and applies it on top of the defaults.
// Each top-level key (sites, devices, teams) that is present replaces the
// corresponding table wholesale; absent keys keep the built-in table.
// List order in the file becomes the match order.
func Load(path string) (Dictionaries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dictionaries{}, fmt.Errorf("read dictionaries: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Dictionaries, error) {
	var overlay Dictionaries
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Dictionaries{}, fmt.Errorf("parse dictionaries: %w", err)
	}

	d := Default()
	if overlay.Sites != nil {
		d.Sites = overlay.Sites
	}
	if overlay.Devices != nil {
		d.Devices = overlay.Devices
	}
	if overlay.Teams != nil {
		d.Teams = overlay.Teams
	}
	if err := d.validate(); err != nil {
		return Dictionaries{}, err
	}
	return d, nil
}

// validate rejects entries that can never match.
func (d Dictionaries) validate() error {
	for _, table := range []struct {
		name    string
		entries []Entry
	}{
		{"sites", d.Sites},
		{"devices", d.Devices},
		{"teams", d.Teams},
	} {
		for i, e := range table.entries {
			if e.Code == "" {
				return fmt.Errorf("dictionaries: %s[%d]: empty code", table.name, i)
			}
			if len(e.Keywords) == 0 {
				return fmt.Errorf("dictionaries: %s[%d] (%s): no keywords", table.name, i, e.Code)
			}
		}
	}
	return nil
}
