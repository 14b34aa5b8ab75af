package segmentio

import (
	"context"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/ibd/segment"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

const snappySuffix = ".sz"

// WriteFile writes set to path.  The output is compressed if path ends in
// ".gz" or ".sz".
func WriteFile(ctx context.Context, path string, set *segment.Set) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "segmentio: create %s", path)
	}
	defer file.CloseAndReport(ctx, out, &err)

	w := out.Writer(ctx)
	var zw io.WriteCloser
	switch {
	case fileio.DetermineType(path) == fileio.Gzip:
		zw = gzip.NewWriter(w)
	case strings.HasSuffix(path, snappySuffix):
		zw = snappy.NewBufferedWriter(w)
	}
	if zw != nil {
		w = zw
	}
	if err = Write(w, set); err != nil {
		return errors.Wrapf(err, "segmentio: write %s", path)
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return errors.Wrapf(err, "segmentio: close %s", path)
		}
	}
	log.Debug.Printf("segmentio: wrote %d segments to %s", set.Len(), path)
	return nil
}

// ReadFile reads a set written by WriteFile.
func ReadFile(ctx context.Context, path string, opts ...segment.SetOpt) (set *segment.Set, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "segmentio: open %s", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	r := io.Reader(in.Reader(ctx))
	switch {
	case fileio.DetermineType(path) == fileio.Gzip:
		gz, gerr := gzip.NewReader(r)
		if gerr != nil {
			return nil, errors.Wrapf(gerr, "segmentio: %s", path)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(path, snappySuffix):
		r = snappy.NewReader(r)
	}
	if set, err = Read(r, opts...); err != nil {
		return nil, errors.Wrapf(err, "segmentio: %s", path)
	}
	return set, nil
}
