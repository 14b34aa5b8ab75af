package segmentio

import (
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/ibd/segment"
	"github.com/pkg/errors"
)

const header = "Start\tEnd\tStartBP\tEndBP\tLength\tConfidence\tSamples"

// row is one TSV line.  Field tags match header.
type row struct {
	Start      int64   `tsv:"Start"`
	End        int64   `tsv:"End"`
	StartBP    int64   `tsv:"StartBP"`
	EndBP      int64   `tsv:"EndBP"`
	Length     float64 `tsv:"Length"`
	Confidence int64   `tsv:"Confidence"`
	Samples    string  `tsv:"Samples"`
}

// Write writes the segments of set to w, in set order, with a header line.
func Write(w io.Writer, set *segment.Set) error {
	out := tsv.NewWriter(w)
	out.WriteString(header)
	if err := out.EndLine(); err != nil {
		return err
	}
	var buf []byte
	for _, t := range set.Tuples() {
		out.WriteInt64(int64(t.Start))
		out.WriteInt64(int64(t.End))
		out.WriteInt64(t.StartBP)
		out.WriteInt64(t.EndBP)
		out.WriteString(strconv.FormatFloat(t.Length, 'g', -1, 64))
		out.WriteInt64(int64(t.Confidence))
		buf = appendSamples(buf[:0], t.Samples)
		out.WriteString(string(buf))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

func appendSamples(buf []byte, haps []segment.HapID) []byte {
	for i, h := range haps {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(h.Sample), 10)
		buf = append(buf, '.')
		buf = strconv.AppendInt(buf, int64(h.Side), 10)
	}
	return buf
}

// Read parses a TSV produced by Write.  opts configure the returned set.
// Every row is validated as by segment.FromTuple; the first bad row fails the
// read.
func Read(r io.Reader, opts ...segment.SetOpt) (*segment.Set, error) {
	in := tsv.NewReader(r)
	in.HasHeaderRow = true
	in.UseHeaderNames = true

	var tuples []segment.Tuple
	for line := 2; ; line++ {
		var rec row
		if err := in.Read(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "segmentio: line %d", line)
		}
		haps, err := parseSamples(rec.Samples)
		if err != nil {
			return nil, errors.Wrapf(err, "segmentio: line %d", line)
		}
		tuples = append(tuples, segment.Tuple{
			Start:      int(rec.Start),
			End:        int(rec.End),
			StartBP:    rec.StartBP,
			EndBP:      rec.EndBP,
			Length:     rec.Length,
			Confidence: int(rec.Confidence),
			Samples:    haps,
		})
	}
	return segment.NewSetFromTuples(tuples, opts...)
}

func parseSamples(s string) ([]segment.HapID, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	haps := make([]segment.HapID, len(fields))
	for i, f := range fields {
		dot := strings.IndexByte(f, '.')
		if dot < 0 {
			return nil, errors.Errorf("haplotype %q: want sample.side", f)
		}
		sample, err := strconv.Atoi(f[:dot])
		if err != nil || sample < 0 {
			return nil, errors.Errorf("haplotype %q: bad sample", f)
		}
		side, err := strconv.Atoi(f[dot+1:])
		if err != nil || (side != int(segment.Maternal) && side != int(segment.Paternal)) {
			return nil, errors.Errorf("haplotype %q: bad side", f)
		}
		haps[i] = segment.HapID{Sample: sample, Side: segment.Side(side)}
	}
	return haps, nil
}
