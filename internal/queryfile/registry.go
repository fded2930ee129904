// Package queryfile loads the queries directory at startup. Every *.sql file
// becomes one QueryDefinition; a sidecar <name>.yaml next to it may declare
// parameter names and display options. Routes are registered once from the
// returned list; nothing here is consulted per request.
package queryfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/locvo/sqlexport/internal/domain"
	"github.com/locvo/sqlexport/pkg/exportconfig"
)

type sidecar struct {
	Params  []string                     `yaml:"params"`
	Display *exportconfig.DisplayOptions `yaml:"display"`
}

// Load scans dir and returns definitions sorted by name so route registration
// is deterministic across restarts.
func Load(dir string) ([]domain.QueryDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read queries dir %s: %w", dir, err)
	}

	var defs []domain.QueryDefinition
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".sql")
		sqlBytes, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read query %s: %w", entry.Name(), err)
		}
		sqlText := strings.TrimSpace(string(sqlBytes))
		if sqlText == "" {
			return nil, fmt.Errorf("query file %s is empty", entry.Name())
		}

		def := domain.QueryDefinition{Name: name, SQL: sqlText}

		sidecarPath := filepath.Join(dir, name+".yaml")
		if raw, err := os.ReadFile(sidecarPath); err == nil {
			var sc sidecar
			if err := yaml.Unmarshal(raw, &sc); err != nil {
				return nil, fmt.Errorf("failed to parse sidecar %s: %w", sidecarPath, err)
			}
			def.Params = sc.Params
			def.Display = sc.Display
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read sidecar %s: %w", sidecarPath, err)
		}

		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}
