package viewdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type ErrorKind uint

const (
	KindMissingFile ErrorKind = iota
	KindShortFile
	KindMalformedLine
	KindFieldCount
)

var kindPrintNames = []string{
	"missing file", "short file", "malformed line", "field count mismatch",
}

func (k ErrorKind) String() (txt string) {
	txt = kindPrintNames[k]
	return
}

// ParseError reports where a read of the view data file went wrong.
// The file format carries no labels the reader could resynchronize
// on, so the first bad line aborts the whole read.
type ParseError struct {
	Kind ErrorKind
	Line int    // 1-based, 0 when no line applies
	Text string // offending line, empty when no line applies
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %q", e.Kind, e.Line, e.Text)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadViewData reads the view data file the post-processor wrote and
// returns the reloaded GUI parameters. The six displacement extrema
// values are divided by coordRescale as they are stored.
func ReadViewData(filename string, coordRescale float64) (vp *ViewParams, err error) {
	var (
		file *os.File
	)
	if coordRescale == 0 {
		err = fmt.Errorf("coordinate rescale factor must be nonzero")
		return
	}
	if file, err = os.Open(filename); err != nil {
		err = &ParseError{Kind: KindMissingFile, Err: err}
		return
	}
	defer file.Close()
	return readViewData(bufio.NewReader(file), coordRescale)
}

func readViewData(reader *bufio.Reader, coordRescale float64) (vp *ViewParams, err error) {
	lr := &lineReader{reader: reader}
	vp = &ViewParams{CoordRescale: coordRescale}

	// Two title lines ahead of the displacement table
	if err = lr.skipLines(2); err != nil {
		return nil, err
	}
	displacements := []*Extrema{&vp.Ux, &vp.Uy, &vp.Uz}
	for _, ex := range displacements {
		if err = lr.readExtrema(ex); err != nil {
			return nil, err
		}
	}

	// Rescale the displacement data
	for _, ex := range displacements {
		ex.Min /= coordRescale
		ex.Max /= coordRescale
	}

	// Blank separator plus the two gauss point header lines
	if err = lr.skipLines(3); err != nil {
		return nil, err
	}
	if err = lr.readTensor(&vp.Stress); err != nil {
		return nil, err
	}
	if err = lr.skipLines(1); err != nil {
		return nil, err
	}
	if err = lr.readTensor(&vp.Strain); err != nil {
		return nil, err
	}
	if err = lr.skipLines(2); err != nil {
		return nil, err
	}

	var f []float64
	if f, err = lr.readFloats(6); err != nil {
		return nil, err
	}
	vp.OrthoRight, vp.OrthoLeft, vp.OrthoTop, vp.OrthoBottom = f[0], f[1], f[2], f[3]
	vp.Near, vp.FarUnused = f[4], f[5]

	if err = lr.skipLines(1); err != nil {
		return nil, err
	}
	var m []int
	if m, err = lr.readInts(2); err != nil {
		return nil, err
	}
	vp.MeshWidth, vp.MeshHeight = m[0], m[1]

	if err = lr.skipLines(1); err != nil {
		return nil, err
	}
	if f, err = lr.readFloats(3); err != nil {
		return nil, err
	}
	vp.StepSizeX, vp.StepSizeY, vp.StepSizeZ = f[0], f[1], f[2]

	if err = lr.skipLines(1); err != nil {
		return nil, err
	}
	if f, err = lr.readFloats(1); err != nil {
		return nil, err
	}
	vp.AmplifyStep0 = f[0]
	return
}

type lineReader struct {
	reader *bufio.Reader
	lineNo int
}

func (lr *lineReader) getLine() (line string, err error) {
	line, err = lr.reader.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still a line
		if err != io.EOF || len(line) == 0 {
			return "", &ParseError{Kind: KindShortFile, Line: lr.lineNo + 1, Err: err}
		}
		err = nil
	}
	lr.lineNo++
	line = strings.TrimRight(line, "\r\n")
	return
}

func (lr *lineReader) skipLines(n int) (err error) {
	for i := 0; i < n; i++ {
		if _, err = lr.getLine(); err != nil {
			return
		}
	}
	return
}

func (lr *lineReader) malformed(line string, err error) error {
	return &ParseError{Kind: KindMalformedLine, Line: lr.lineNo, Text: line, Err: err}
}

// readExtrema scans a "<label> <label> min_idx max_idx min max" line.
// The two leading label tokens are positional and ignored, matching
// the writer's layout.
func (lr *lineReader) readExtrema(ex *Extrema) (err error) {
	var line string
	if line, err = lr.getLine(); err != nil {
		return
	}
	nargs := 6
	fields := strings.Fields(line)
	if len(fields) != nargs {
		return &ParseError{Kind: KindFieldCount, Line: lr.lineNo, Text: line}
	}
	if ex.MinNode, err = strconv.Atoi(fields[2]); err != nil {
		return lr.malformed(line, err)
	}
	if ex.MaxNode, err = strconv.Atoi(fields[3]); err != nil {
		return lr.malformed(line, err)
	}
	if ex.Min, err = strconv.ParseFloat(fields[4], 64); err != nil {
		return lr.malformed(line, err)
	}
	if ex.Max, err = strconv.ParseFloat(fields[5], 64); err != nil {
		return lr.malformed(line, err)
	}
	return
}

// readTensor reads the five component lines in writer order:
// xx, yy, xy, I, II.
func (lr *lineReader) readTensor(te *TensorExtrema) (err error) {
	components := []*Extrema{&te.XX, &te.YY, &te.XY, &te.I, &te.II}
	for _, ex := range components {
		if err = lr.readExtrema(ex); err != nil {
			return
		}
	}
	return
}

func (lr *lineReader) readFloats(n int) (vals []float64, err error) {
	var line string
	if line, err = lr.getLine(); err != nil {
		return
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, &ParseError{Kind: KindFieldCount, Line: lr.lineNo, Text: line}
	}
	vals = make([]float64, n)
	for i, fld := range fields {
		if vals[i], err = strconv.ParseFloat(fld, 64); err != nil {
			return nil, lr.malformed(line, err)
		}
	}
	return
}

func (lr *lineReader) readInts(n int) (vals []int, err error) {
	var line string
	if line, err = lr.getLine(); err != nil {
		return
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, &ParseError{Kind: KindFieldCount, Line: lr.lineNo, Text: line}
	}
	vals = make([]int, n)
	for i, fld := range fields {
		if vals[i], err = strconv.Atoi(fld); err != nil {
			return nil, lr.malformed(line, err)
		}
	}
	return
}
