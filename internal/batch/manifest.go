// Package batch converts many images concurrently from a YAML manifest.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/config"
	"github.com/san-kum/asciify/internal/export"
	"github.com/san-kum/asciify/internal/theme"
)

var (
	// ErrNoJobs indicates a manifest without jobs.
	ErrNoJobs = errors.New("batch: manifest has no jobs")

	// ErrDuplicateOutput indicates two jobs resolving to one output directory.
	ErrDuplicateOutput = errors.New("batch: output directory used by another job")
)

// Manifest lists the conversions to run.
type Manifest struct {
	Name     string `yaml:"name"`
	Output   string `yaml:"output"`
	Defaults Job    `yaml:"defaults"`
	Jobs     []Job  `yaml:"jobs"`

	// baseDir resolves relative paths; set by LoadManifest.
	baseDir string
}

// Job is a single image conversion. Empty fields inherit Manifest.Defaults,
// except Output: a job's Output names its directory under the manifest
// output, while Defaults.Output is a subdirectory for jobs without one.
type Job struct {
	Image    string   `yaml:"image"`
	Width    int      `yaml:"width"`
	Theme    string   `yaml:"theme"`
	Resample string   `yaml:"resample"`
	Formats  []string `yaml:"formats"`
	Output   string   `yaml:"output"`
}

// LoadManifest loads a manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m.baseDir = filepath.Dir(path)

	if len(m.Jobs) == 0 {
		return nil, ErrNoJobs
	}
	return &m, nil
}

// resolved is a job with defaults applied and values parsed.
type resolved struct {
	image     string
	width     int
	theme     theme.Theme
	resampler ascii.Resampler
	formats   []export.Format
	outDir    string
}

func (m *Manifest) resolve(i int) (resolved, error) {
	j := m.Jobs[i]
	d := m.Defaults

	if j.Image == "" {
		return resolved{}, fmt.Errorf("job %d: missing image", i+1)
	}

	width := firstInt(j.Width, d.Width, config.DefaultWidth)
	if err := config.CheckWidth(width); err != nil {
		return resolved{}, fmt.Errorf("job %d: %w", i+1, err)
	}

	th, err := theme.Parse(firstString(j.Theme, d.Theme, config.DefaultTheme))
	if err != nil {
		return resolved{}, fmt.Errorf("job %d: %w", i+1, err)
	}

	rs, err := ascii.GetResampler(firstString(j.Resample, d.Resample, config.DefaultResample))
	if err != nil {
		return resolved{}, fmt.Errorf("job %d: %w", i+1, err)
	}

	names := j.Formats
	if len(names) == 0 {
		names = d.Formats
	}
	if len(names) == 0 {
		names = []string{"txt"}
	}
	formats := make([]export.Format, 0, len(names))
	for _, name := range names {
		f, err := export.ParseFormat(name)
		if err != nil {
			return resolved{}, fmt.Errorf("job %d: %w", i+1, err)
		}
		formats = append(formats, f)
	}

	out := j.Output
	if out == "" {
		out = filepath.Join(d.Output, strings.TrimSuffix(filepath.Base(j.Image), filepath.Ext(j.Image)))
	}

	return resolved{
		image:     m.path(j.Image),
		width:     width,
		theme:     th,
		resampler: rs,
		formats:   formats,
		outDir:    filepath.Join(m.path(m.Output), out),
	}, nil
}

// resolveAll resolves every job. A job whose output directory was already
// claimed by an earlier job gets ErrDuplicateOutput.
func (m *Manifest) resolveAll() ([]resolved, []error) {
	jobs := make([]resolved, len(m.Jobs))
	errs := make([]error, len(m.Jobs))
	claimed := make(map[string]int, len(m.Jobs))

	for i := range m.Jobs {
		job, err := m.resolve(i)
		if err != nil {
			errs[i] = err
			continue
		}
		if first, ok := claimed[job.outDir]; ok {
			errs[i] = fmt.Errorf("job %d: %w: %s (job %d)", i+1, ErrDuplicateOutput, job.outDir, first+1)
			continue
		}
		claimed[job.outDir] = i
		jobs[i] = job
	}
	return jobs, errs
}

func (m *Manifest) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.baseDir, p)
}

func firstInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
