package meson

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/zerr"
)

// LogPrinter prints Meson log files wrapped in CI log groups.
type LogPrinter struct {
	fs     afero.Fs
	dir    string
	out    io.Writer
	logger ports.Logger
}

// NewLogPrinter creates a LogPrinter reading from the real filesystem and writing to stdout.
func NewLogPrinter(logger ports.Logger) *LogPrinter {
	return NewLogPrinterWithFs(afero.NewOsFs(), os.Stdout, logger)
}

// NewLogPrinterWithFs creates a LogPrinter on fs writing to out.
func NewLogPrinterWithFs(fs afero.Fs, out io.Writer, logger ports.Logger) *LogPrinter {
	return &LogPrinter{
		fs:     fs,
		dir:    filepath.Join(domain.BuildDir, "meson-logs"),
		out:    out,
		logger: logger,
	}
}

// Print writes the named log between ::group:: and ::endgroup:: markers.
// A log that does not exist is skipped.
func (p *LogPrinter) Print(name string) error {
	path := filepath.Join(p.dir, name)

	info, err := p.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat log file"), "path", path)
	}

	content, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read log file"), "path", path)
	}

	p.logger.Info(fmt.Sprintf("Printing %s (%s)", path, humanize.Bytes(uint64(info.Size())))) //nolint:gosec // size is never negative

	if _, err := fmt.Fprintf(p.out, "::group::==== %s ====\n%s\n::endgroup::\n", name, content); err != nil {
		return zerr.Wrap(err, "failed to print log file")
	}
	return nil
}
