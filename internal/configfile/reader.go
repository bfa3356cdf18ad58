// SPDX-License-Identifier:Apache-2.0

package configfile

import (
	"fmt"
	"os"

	"github.com/l3plan/l3plan/api/topology"
)

// ReadFromFile reads an L3OutConfig from a YAML file and applies the
// config-level defaults. Semantic validation is left to the planner.
func ReadFromFile(path string) (*topology.L3OutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := topology.ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	config.SetDefaults()
	return config, nil
}
