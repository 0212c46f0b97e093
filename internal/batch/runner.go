// Package batch fans the per-image pipeline out across a directory's
// eligible files.
package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"squarify/internal/codec"
	"squarify/internal/config"
	"squarify/internal/logging"
	"squarify/internal/transform"
	"squarify/pkg/imgutil"
)

// Run processes every eligible file in dir and writes results into
// outputDir. Jobs are independent; one file's failure is logged and never
// aborts its siblings. Run blocks until all workers finish, then returns
// the aggregate summary alongside the per-file results.
func Run(ctx context.Context, dir, outputDir string, settings config.Settings, log *logging.Logger, updates chan<- ProgressUpdate) (Summary, []Result, error) {
	summary := Summary{}

	queue, err := Scan(dir, outputDir, settings)
	if err != nil {
		return summary, nil, err
	}
	summary.Eligible = len(queue)
	if updates != nil {
		updates <- ProgressUpdate{EligibleDelta: len(queue)}
	}

	jobs := make(chan Job)
	results := make(chan Result)

	workers := runtime.NumCPU()
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			worker(ctx, jobs, results, settings, log)
		}()
	}

	var collected []Result
	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for res := range results {
			if res.Err != nil {
				summary.Failed++
				if updates != nil {
					updates <- ProgressUpdate{FailedDelta: 1}
				}
			} else {
				summary.Processed++
				if updates != nil {
					updates <- ProgressUpdate{ProcessedDelta: 1}
				}
			}
			collected = append(collected, res)
		}
	}()

	go func() {
		defer close(jobs)
		for _, job := range queue {
			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collectorDone

	if summary.Processed == 0 {
		log.Warnf("No images processed. Please check the input folder for valid image files.")
	} else {
		log.Infof("Processed %d images.", summary.Processed)
	}

	return summary, collected, nil
}

// Scan builds the job list from dir's entries whose lowercased names end in
// a valid extension. The output filename swaps the source extension for the
// effective one; with the keep sentinel the source's own extension stays.
func Scan(dir, outputDir string, settings config.Settings) ([]Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var queue []Job
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		matched, ok := imgutil.Match(name, config.ValidExtensions)
		if !ok {
			continue
		}

		outputExt := settings.Extension
		if settings.KeepOriginal() {
			outputExt = matched
			if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" {
				outputExt = strings.ToLower(ext)
			}
		}
		outputName := strings.TrimSuffix(name, filepath.Ext(name)) + "." + outputExt

		queue = append(queue, Job{
			SourcePath: filepath.Join(dir, name),
			OutputPath: filepath.Join(outputDir, outputName),
			Display:    name,
			Size:       settings.Size,
			Format:     imgutil.FromExtension(outputExt),
		})
	}
	return queue, nil
}

func worker(ctx context.Context, jobs <-chan Job, results chan<- Result, settings config.Settings, log *logging.Logger) {
	for job := range jobs {
		if ctx.Err() != nil {
			return
		}

		res := Result{Job: job}
		res.SavedPath, res.Err = process(job, settings)
		if res.Err != nil {
			log.Errorf("%v", res.Err)
		} else {
			log.Infof("Saved: %s", res.SavedPath)
		}
		results <- res
	}
}

// process runs one file through the pipeline: classify, transform, save.
func process(job Job, settings config.Settings) (string, error) {
	img, err := codec.Load(job.SourcePath)
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	var final *image.NRGBA
	if transform.Near(bounds.Dx(), bounds.Dy(), settings.Tolerance) {
		final = transform.Square(img, job.Size)
	} else {
		final = transform.Composite(img, job.Size, settings.BlurSigma, settings.VeilAlpha)
	}

	return codec.Save(final, job.OutputPath, job.Format)
}
