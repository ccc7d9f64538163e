package cli

import (
	"errors"
	"fmt"

	"github.com/vburojevic/reqtriage/internal/logfile"
	"github.com/vburojevic/reqtriage/internal/output"
	"go.uber.org/zap"
)

// ReportCmd summarizes a JSON request log export
type ReportCmd struct {
	File string `arg:"" optional:"" default:"${config_file}" help:"JSON array of log records to analyze"`
}

// Run executes the report command
func (c *ReportCmd) Run(globals *Globals) error {
	path := c.File
	if path == "" {
		path = logfile.DefaultPath
	}
	logger := globals.Logger.With(zap.String("file", path))

	globals.Debug("reading %s (format=%s)", path, globals.Format)
	records, err := logfile.LoadFile(path)
	if err != nil {
		logger.Debug("load failed", zap.Error(err))
		return c.outputLoadError(globals, err)
	}
	logger.Debug("loaded records", zap.Int("count", len(records)))

	if len(records) == 0 {
		emitWarning(globals, fmt.Sprintf("no log records in %s", path))
	}

	summary := output.NewAnalyzer(logger).Aggregate(records)

	switch globals.Format {
	case "ndjson":
		return output.NewNDJSONWriter(globals.Stdout).WriteReport(output.NewReportOutput(summary, path, globals.Clock.Now()))
	case "table":
		return output.NewTableReporter(globals.Stdout).Render(summary)
	default:
		return output.NewTextReporter(globals.Stdout, useStyles(globals)).Render(summary)
	}
}

// outputLoadError reports a load failure on stdout and nothing else.
func (c *ReportCmd) outputLoadError(globals *Globals, err error) error {
	cause, source := err, ""
	var loadErr *logfile.LoadError
	if errors.As(err, &loadErr) {
		cause, source = loadErr.Err, loadErr.Path
	}

	if globals.Format == "ndjson" {
		if werr := output.NewNDJSONWriter(globals.Stdout).WriteError("LOAD_ERROR", cause.Error(), source); werr != nil {
			return errors.Join(err, werr)
		}
		return err
	}
	if werr := output.RenderLoadError(globals.Stdout, cause); werr != nil {
		return errors.Join(err, werr)
	}
	return err
}
