// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch converts point files on disk: it loads input through the
// encoding-fallback reader, runs the conversion engine, and writes the
// result next to the input with collision-avoiding naming. It also runs
// whole job lists described by a YAML file.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adlenadlen/xyzconv/internal/engine"
	"github.com/adlenadlen/xyzconv/internal/loader"
	"github.com/adlenadlen/xyzconv/pkg/types"
)

// Job describes one file conversion. From may be left empty to infer the
// source format from the input extension; Output may be left empty to
// derive the output path from the input path.
type Job struct {
	Input  string       `yaml:"input"`
	From   types.Format `yaml:"from,omitempty"`
	To     types.Format `yaml:"to"`
	Output string       `yaml:"output,omitempty"`

	InDelimiter  types.Delimiter       `yaml:"in_delimiter,omitempty"`
	InOrder      types.CoordinateOrder `yaml:"in_order,omitempty"`
	OutDelimiter types.Delimiter       `yaml:"out_delimiter,omitempty"`
	OutOrder     types.CoordinateOrder `yaml:"out_order,omitempty"`
}

// Validate rejects option values outside their closed sets. Empty values
// pass here; the engine decides which ones a format actually requires.
func (j Job) Validate() error {
	if j.Input == "" {
		return fmt.Errorf("job has no input file")
	}
	if j.From != "" {
		if _, err := types.FormatFromString(string(j.From)); err != nil {
			return err
		}
	}
	if j.To != "" {
		if _, err := types.FormatFromString(string(j.To)); err != nil {
			return err
		}
	}
	for _, d := range []types.Delimiter{j.InDelimiter, j.OutDelimiter} {
		if d != "" {
			if _, err := types.DelimiterFromString(string(d)); err != nil {
				return err
			}
		}
	}
	for _, o := range []types.CoordinateOrder{j.InOrder, j.OutOrder} {
		if o != "" {
			if _, err := types.OrderFromString(string(o)); err != nil {
				return err
			}
		}
	}
	return nil
}

// JobResult holds the outcome of one converted file.
type JobResult struct {
	Input string

	// Source is the resolved source format, after extension inference.
	Source types.Format
	Target types.Format

	OutputPath string
	Points     int
	Skipped    int
}

// Run converts a single file. The output file is written as UTF-8 only
// after the whole conversion succeeded; a failed conversion leaves no
// partial output behind.
func Run(r *loader.Reader, job Job) (JobResult, error) {
	if err := job.Validate(); err != nil {
		return JobResult{}, err
	}

	from := job.From
	if from == "" {
		from = types.FormatFromExtension(strings.ToLower(filepath.Ext(job.Input)))
	}

	text, err := r.Read(job.Input)
	if err != nil {
		return JobResult{}, err
	}

	res, err := engine.Convert(engine.Request{
		Source:        from,
		Target:        job.To,
		Text:          text,
		SourceOptions: engine.Options{Delimiter: job.InDelimiter, Order: job.InOrder},
		TargetOptions: engine.Options{Delimiter: job.OutDelimiter, Order: job.OutOrder},
	})
	if err != nil {
		return JobResult{}, fmt.Errorf("converting %s: %w", filepath.Base(job.Input), err)
	}

	out := job.Output
	if out == "" {
		out = OutputPath(job.Input, job.To)
	}
	if err := os.WriteFile(out, []byte(res.Output), 0o644); err != nil {
		return JobResult{}, fmt.Errorf("writing %s: %w", out, err)
	}

	return JobResult{
		Input:      job.Input,
		Source:     from,
		Target:     job.To,
		OutputPath: out,
		Points:     res.Points,
		Skipped:    res.Skipped,
	}, nil
}

// OutputPath derives the output file name for an input converted to
// format f: <base>_converted<ext>, appending _1, _2, ... while the
// candidate already exists so existing files are never overwritten.
func OutputPath(input string, f types.Format) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	path := base + "_converted" + f.Extension()
	if _, err := os.Stat(path); err != nil {
		return path
	}
	for n := 1; ; n++ {
		path = fmt.Sprintf("%s_converted_%d%s", base, n, f.Extension())
		if _, err := os.Stat(path); err != nil {
			return path
		}
	}
}

// BatchResult summarizes a job list run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the number of jobs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// RunAll converts each job in order, printing per-file status to w and
// returning a summary plus the outcome of every successful job. Jobs run
// sequentially; a failed job does not stop the rest.
func RunAll(r *loader.Reader, jobs []Job, w io.Writer) (BatchResult, []JobResult) {
	var result BatchResult
	var done []JobResult
	for _, job := range jobs {
		res, err := Run(r, job)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", job.Input, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s (%d points)\n", job.Input, res.OutputPath, res.Points)
		result.Converted++
		done = append(done, res)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, done
}
