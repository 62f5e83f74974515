package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/luarename/internal/model"
)

const planIndexFile = "_index.yaml"

// PlanStore persists rename plans so they can be reviewed, edited and
// re-applied later.
type PlanStore interface {
	SavePlans(dir m.Path, reports []m.Report) error
	LoadPlan(path m.Path) (m.RenamePlan, error)
}

// LocalPlanStore writes one YAML document per planned file plus an index.
type LocalPlanStore struct{}

// NewPlanStore constructs a PlanStore implementation.
func NewPlanStore() PlanStore {
	return &LocalPlanStore{}
}

type planSourceYAML struct {
	Path string `yaml:"path"`
	Hash string `yaml:"hash"`
}

type planYAML struct {
	Source  *planSourceYAML `yaml:"source,omitempty"`
	Renames []m.RenameEntry `yaml:"renames"`
}

type planIndexEntry struct {
	Source  string `yaml:"source"`
	Hash    string `yaml:"hash"`
	Plan    string `yaml:"plan"`
	Renames int    `yaml:"renames"`
}

type planIndex struct {
	TotalFiles   int              `yaml:"total_files"`
	TotalRenames int              `yaml:"total_renames"`
	Plans        []planIndexEntry `yaml:"plans"`
}

// SavePlans writes every non-empty plan to dir as <hash>.yaml and refreshes
// the _index.yaml summary. Failed and skipped reports are not written.
func (ps *LocalPlanStore) SavePlans(dir m.Path, reports []m.Report) error {
	if dir == "" {
		return fmt.Errorf("plan directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}

	index := planIndex{}

	for _, report := range reports {
		if report.Source.Origin == nil || report.Err != nil || report.Skipped || report.Plan.IsEmpty() {
			continue
		}

		name := ps.computePlanHash(report.Source) + ".yaml"
		doc := planYAML{
			Source: &planSourceYAML{
				Path: string(report.Source.Origin.Path),
				Hash: report.Source.Origin.Hash,
			},
			Renames: report.Plan.Renames,
		}

		if err := writeYAML(filepath.Join(string(dir), name), doc); err != nil {
			return fmt.Errorf("failed to save plan for %s: %w", report.Source.Origin.Path, err)
		}

		index.TotalFiles++
		index.TotalRenames += len(report.Plan.Renames)
		index.Plans = append(index.Plans, planIndexEntry{
			Source:  doc.Source.Path,
			Hash:    doc.Source.Hash,
			Plan:    name,
			Renames: len(report.Plan.Renames),
		})
	}

	sort.Slice(index.Plans, func(i, j int) bool {
		return index.Plans[i].Source < index.Plans[j].Source
	})

	if err := writeYAML(filepath.Join(string(dir), planIndexFile), index); err != nil {
		return fmt.Errorf("failed to save plan index: %w", err)
	}

	return nil
}

// LoadPlan reads a plan written by SavePlans. A bare document holding only a
// renames list is accepted too.
func (ps *LocalPlanStore) LoadPlan(path m.Path) (m.RenamePlan, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RenamePlan{}, fmt.Errorf("failed to read plan: %w", err)
	}

	var doc planYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.RenamePlan{}, fmt.Errorf("failed to decode plan %s: %w", path, err)
	}

	return m.RenamePlan{Renames: doc.Renames}, nil
}

func (ps *LocalPlanStore) computePlanHash(source m.Source) string {
	h := sha256.New()
	_, _ = h.Write([]byte(source.Origin.Path))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(source.Origin.Hash))

	return hex.EncodeToString(h.Sum(nil))[:16]
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
