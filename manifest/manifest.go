package manifest

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	simdtestgen "github.com/wippyai/simd-testgen"
	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/selection"
)

// Job is one entry of the jobs list.
type Job struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`
	Shape  string   `yaml:"shape"`
	Policy string   `yaml:"policy"`
	Output string   `yaml:"output"`
	Title  string   `yaml:"title"`
	Ops    []string `yaml:"ops"`
	Max    int      `yaml:"max"`
}

// Manifest is a decoded batch file. Dir is the directory relative paths
// resolve against.
type Manifest struct {
	Dir  string `yaml:"-"`
	Jobs []Job  `yaml:"jobs"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes data and validates it. Unknown keys are rejected.
func Parse(data []byte, dir string) (*Manifest, error) {
	m := &Manifest{Dir: dir}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode manifest")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.resolve()
	return m, nil
}

// Validate checks every job. Shapes are checked later against the lane
// table in Build.
func (m *Manifest) Validate() error {
	if len(m.Jobs) == 0 {
		return errors.InvalidInput(errors.PhaseConfig, "manifest has no jobs")
	}
	for i, j := range m.Jobs {
		path := []string{"jobs", strconv.Itoa(i)}
		fail := func(field, msg string) error {
			return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path(append(path, field)...).
				Detail("job %s: %s", j.label(i), msg).
				Build()
		}

		switch {
		case j.Input == "":
			return fail("input", "input is required")
		case j.Shape == "":
			return fail("shape", "shape is required")
		case len(j.Ops) == 0:
			return fail("ops", "at least one operation is required")
		case slices.Contains(j.Ops, ""):
			return fail("ops", "empty operation name")
		case j.Output == "":
			return fail("output", "output is required")
		case j.Max < 0:
			return fail("max", fmt.Sprintf("max must not be negative, got %d", j.Max))
		case j.Policy != "" && !slices.Contains(selection.Names, j.Policy):
			return fail("policy", fmt.Sprintf("unknown policy %q", j.Policy))
		}
	}
	return nil
}

func (m *Manifest) resolve() {
	for i := range m.Jobs {
		j := &m.Jobs[i]
		if j.Name == "" {
			j.Name = j.label(i)
		}
		if !filepath.IsAbs(j.Input) {
			j.Input = filepath.Join(m.Dir, j.Input)
		}
		if !filepath.IsAbs(j.Output) {
			j.Output = filepath.Join(m.Dir, j.Output)
		}
	}
}

func (j Job) label(i int) string {
	if j.Name != "" {
		return j.Name
	}
	return "#" + strconv.Itoa(i+1)
}

// Build turns the entry into a pipeline job using table for the shape.
func (j Job) Build(table *lane.Table) (simdtestgen.Job, error) {
	shape, err := table.Lookup(j.Shape)
	if err != nil {
		return simdtestgen.Job{}, err
	}
	policy, err := selection.ForName(j.Policy, j.Max, shape)
	if err != nil {
		return simdtestgen.Job{}, err
	}
	return simdtestgen.Job{
		Shape:  shape,
		Ops:    j.Ops,
		Policy: policy,
		Title:  j.Title,
	}, nil
}
