package batch

import (
	"context"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/export"
	"github.com/san-kum/asciify/internal/imageio"
)

// Result reports the outcome of one job.
type Result struct {
	Image  string
	OutDir string
	Width  int
	Rows   int
	Files  []string
	Err    error
}

// Run converts every job with at most workers running at once. Job failures
// are reported in the results; only context cancellation aborts the run.
func Run(ctx context.Context, m *Manifest, workers int, logger *log.Logger) ([]Result, error) {
	if len(m.Jobs) == 0 {
		return nil, ErrNoJobs
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	jobs, errs := m.resolveAll()
	results := make([]Result, len(m.Jobs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i := range m.Jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if errs[i] != nil {
				results[i] = Result{Image: m.Jobs[i].Image, Err: errs[i]}
				return nil
			}
			results[i] = runJob(m.Jobs[i].Image, jobs[i], logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func runJob(image string, job resolved, logger *log.Logger) Result {
	res := Result{Image: image, OutDir: job.outDir, Width: job.width}

	img, err := imageio.DecodeFile(job.image)
	if err != nil {
		res.Err = err
		return res
	}

	art := ascii.ConvertWith(img, job.width, job.resampler)
	res.Rows = art.Height()

	exp := export.New(export.DirWriter{Dir: job.outDir}, logger.With("image", res.Image))
	for _, f := range job.formats {
		if err := exp.Export(art, job.theme, f); err != nil {
			res.Err = err
			return res
		}
		res.Files = append(res.Files, f.Filename())
	}
	return res
}
