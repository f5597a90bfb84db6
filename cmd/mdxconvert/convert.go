package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	mdxconv "github.com/keenlychuang/mdx-to-docs"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for conversion operations.
var (
	ErrReadSource     = errors.New("failed to read MDX file")
	ErrReadCSS        = errors.New("failed to read CSS file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrInvalidEngine  = errors.New("invalid engine")
	ErrInvalidBackend = errors.New("invalid backend")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mdxconv.Input) (*mdxconv.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdxconv.Converter)(nil)

// conversionParams holds resolved per-run parameters.
type conversionParams struct {
	format mdxconv.Format
	page   *mdxconv.PageSettings
	css    string
	opts   []mdxconv.Option
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath string
	Outputs   []string
	Err       error
	Duration  time.Duration
}

// run executes the conversion and returns the process exit code.
func run(f *cliFlags, args []string, env *Environment) int {
	if len(args) != 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}
	inputPath, outputDir := args[0], args[1]

	params, err := resolveParams(f)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	batchMode := info.IsDir()

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	if len(files) == 0 {
		if !f.quiet {
			fmt.Fprintf(env.Stdout, "No MDX files found in %q\n", inputPath)
		}
		return ExitSuccess
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		fmt.Fprintf(env.Stderr, "Error: creating output directory: %v\n", err)
		return ExitIO
	}

	conv, err := mdxconv.NewConverter(params.opts...)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	defer conv.Close()

	// Strictly sequential: each file runs start-to-finish before the
	// next begins, reusing one browser across the batch.
	ctx := context.Background()
	results := make([]ConversionResult, 0, len(files))
	for _, file := range files {
		results = append(results, convertFile(ctx, conv, file, params))
	}

	printResults(results, f.quiet, f.verbose, env)

	// Batch mode succeeds at the batch level even with per-file
	// failures; single-file mode propagates the failure.
	if !batchMode {
		if r := results[0]; r.Err != nil {
			return exitCodeFor(r.Err)
		}
	}
	return ExitSuccess
}

// resolveParams validates flags and builds converter options.
func resolveParams(f *cliFlags) (*conversionParams, error) {
	format, err := mdxconv.ParseFormat(f.format)
	if err != nil {
		return nil, err
	}

	page := &mdxconv.PageSettings{
		Size:        f.page.size,
		Orientation: f.page.orientation,
		Margin:      f.page.margin,
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	params := &conversionParams{format: format, page: page}

	if f.css != "" {
		content, err := os.ReadFile(f.css) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		params.css = string(content)
	}

	switch f.engine {
	case "gfm", "":
	case "commonmark":
		params.opts = append(params.opts, mdxconv.WithEngine(mdxconv.EngineCommonMark))
	default:
		return nil, fmt.Errorf("%w: %q (must be gfm or commonmark)", ErrInvalidEngine, f.engine)
	}

	switch f.backend {
	case "rod", "":
	case "chromedp":
		params.opts = append(params.opts, mdxconv.WithPDFBackend(mdxconv.BackendChromedp))
	default:
		return nil, fmt.Errorf("%w: %q (must be rod or chromedp)", ErrInvalidBackend, f.backend)
	}

	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, f.timeout)
		}
		params.opts = append(params.opts, mdxconv.WithTimeout(d))
	}

	return params, nil
}

// convertFile processes a single file and returns the result.
// A failed PDF does not roll back an already written DOCX for the same
// source; the caller logs the error and moves on.
func convertFile(ctx context.Context, conv CLIConverter, file FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: file.InputPath}

	content, err := os.ReadFile(file.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadSource, err)
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := conv.Convert(ctx, mdxconv.Input{
		Markdown: string(content),
		CSS:      params.css,
		Formats:  params.format,
		Page:     params.page,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if params.format.IncludesDOCX() {
		// #nosec G306 -- outputs are meant to be readable
		if err := os.WriteFile(file.DOCXPath, convResult.DOCX, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			result.Duration = time.Since(start)
			return result
		}
		result.Outputs = append(result.Outputs, file.DOCXPath)
	}

	if params.format.IncludesPDF() {
		// #nosec G306 -- outputs are meant to be readable
		if err := os.WriteFile(file.PDFPath, convResult.PDF, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			result.Duration = time.Since(start)
			return result
		}
		result.Outputs = append(result.Outputs, file.PDFPath)
	}

	result.Duration = time.Since(start)
	return result
}

// printResults writes per-file outcomes and a batch summary.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) {
	succeeded, failed := 0, 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		succeeded++

		if quiet {
			continue
		}
		for _, out := range r.Outputs {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, out, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", out)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}
}
