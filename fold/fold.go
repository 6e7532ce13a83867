// Package fold runs function-body region discovery over files on disk.
package fold

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/arjunmahishi/tsfold/config"
	"github.com/arjunmahishi/tsfold/lang"
	"github.com/arjunmahishi/tsfold/parser"
	"github.com/arjunmahishi/tsfold/scanner"
	"github.com/arjunmahishi/tsfold/tsfold"
	"github.com/arjunmahishi/tsfold/types"
	"golang.org/x/sync/errgroup"
)

const defaultMaxBytes = 2 * 1024 * 1024

// Regions computes the function body regions of a file or of every
// supported file under a directory. Results follow the scan order.
func Regions(ctx context.Context, opts RegionsOptions) ([]types.FileRegions, error) {
	if opts.Path == "" {
		opts.Path = "."
	}
	if opts.Jobs == 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = defaultMaxBytes
	}
	if opts.Registry == nil {
		opts.Registry = tsfold.Default
	}
	if opts.Activation == nil {
		opts.Activation = config.NewActivation(opts.Registry.Languages()...)
	}
	if opts.Language != "" && lang.Get(opts.Language) == nil {
		return nil, errors.New(opts.Language + " grammar not registered")
	}

	var files []types.FileJob
	if opts.File != "" {
		sc := scanner.New(scanner.Config{})
		job, err := sc.CollectSingle(opts.File, opts.Language)
		if err != nil {
			return nil, err
		}
		files = []types.FileJob{job}
	} else {
		sc := scanner.New(scanner.Config{
			Root: opts.Path,
			Accept: func(language string) bool {
				if opts.Language != "" && language != opts.Language {
					return false
				}
				return opts.Activation.Active(language)
			},
			MaxBytes: opts.MaxBytes,
		})
		var err error
		files, err = sc.Collect()
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return []types.FileRegions{}, nil
	}

	process := func(ctx context.Context, job types.FileJob) (types.FileRegions, bool) {
		d, ok := opts.Registry.Lookup(job.Language)
		if !ok || !opts.Activation.Active(job.Language) {
			// Not configured: the feature is inactive for this file.
			return types.FileRegions{File: job.DisplayPath, Language: job.Language, Regions: []types.BodyRegion{}}, true
		}
		return fileRegions(ctx, job, d)
	}

	return runWorkers(ctx, files, opts.Jobs, process)
}

// Enclosing finds the body region enclosing a cursor in one file.
func Enclosing(ctx context.Context, opts EnclosingOptions) (types.EnclosingResult, error) {
	if opts.File == "" {
		return types.EnclosingResult{}, errors.New("file is required")
	}
	if opts.Registry == nil {
		opts.Registry = tsfold.Default
	}

	sc := scanner.New(scanner.Config{})
	job, err := sc.CollectSingle(opts.File, opts.Language)
	if err != nil {
		return types.EnclosingResult{}, err
	}

	p, err := parser.ForLanguage(job.Language)
	if err != nil {
		return types.EnclosingResult{}, err
	}
	defer p.Close()

	tree, err := p.ParseFile(ctx, job.AbsPath)
	if err != nil {
		return types.EnclosingResult{}, err
	}
	defer tree.Close()

	offset := opts.Offset
	if opts.Line > 0 {
		col := opts.Column
		if col < 1 {
			col = 1
		}
		var ok bool
		offset, ok = tree.Lines().Offset(opts.Line-1, col-1)
		if !ok {
			return types.EnclosingResult{}, fmt.Errorf("position %d:%d is outside %s", opts.Line, opts.Column, job.DisplayPath)
		}
	}

	result := types.EnclosingResult{File: job.DisplayPath, Offset: offset}

	d, ok := opts.Registry.Lookup(job.Language)
	if !ok {
		return result, nil
	}

	if r, ok := tsfold.FindEnclosingBodyRegion(tree.Root(), d, offset); ok {
		br := toBodyRegion(tree.Lines(), r)
		result.Region = &br
	}
	return result, nil
}

// Languages describes every language in reg.
func Languages(reg *tsfold.Registry, act *config.Activation) []types.LanguageInfo {
	if reg == nil {
		reg = tsfold.Default
	}

	ids := reg.Languages()
	infos := make([]types.LanguageInfo, 0, len(ids))
	for _, id := range ids {
		d, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		info := types.LanguageInfo{
			Name:              id,
			FunctionNodeTypes: d.FunctionNodeTypes(),
			BodyField:         d.BodyField(),
			Active:            act == nil || act.Active(id),
		}
		if g := lang.Get(id); g != nil {
			info.Extensions = g.Extensions()
		}
		infos = append(infos, info)
	}
	return infos
}

func fileRegions(ctx context.Context, job types.FileJob, d *tsfold.LanguageDescriptor) (types.FileRegions, bool) {
	p, err := parser.ForLanguage(job.Language)
	if err != nil {
		return types.FileRegions{}, false
	}
	defer p.Close()

	tree, err := p.ParseFile(ctx, job.AbsPath)
	if err != nil {
		return types.FileRegions{}, false
	}
	defer tree.Close()

	found := tsfold.FindAllBodyRegions(tree.Root(), d)
	out := types.FileRegions{
		File:     job.DisplayPath,
		Language: job.Language,
		Regions:  make([]types.BodyRegion, 0, len(found)),
	}
	for _, r := range found {
		out.Regions = append(out.Regions, toBodyRegion(tree.Lines(), r))
	}
	return out, true
}

func toBodyRegion(lines *tsfold.LineIndex, r tsfold.Region) types.BodyRegion {
	sl, sc := lines.Point(r.Start)
	el, ec := lines.Point(r.End)
	return types.BodyRegion{
		Start: r.Start,
		End:   r.End,
		Range: types.Range{
			Start: types.Position{Line: sl + 1, Column: sc + 1},
			End:   types.Position{Line: el + 1, Column: ec + 1},
		},
	}
}

// runWorkers processes files with at most jobs concurrent workers. Results
// keep the order of files; files the process function rejects are dropped.
func runWorkers[T any](
	ctx context.Context,
	files []types.FileJob,
	jobs int,
	process func(context.Context, types.FileJob) (T, bool),
) ([]T, error) {
	workerCount := jobs
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	results := make([]T, len(files))
	kept := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workerCount, 1))
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], kept[i] = process(gctx, f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(files))
	for i, r := range results {
		if kept[i] {
			out = append(out, r)
		}
	}
	return out, nil
}
