package viewdata

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The report shows the displacement extrema multiplied back by the
// rescale factor, so a parse-then-report pass reproduces the file's
// own values.
func TestViewDataReport(t *testing.T) {
	reader := bufio.NewReader(bytes.NewReader(inputFile))
	vp, err := readViewData(reader, 2.0)
	assert.NoError(t, err)

	var buf bytes.Buffer
	vp.Report(&buf)
	assert.Equal(t, reportGolden, buf.String())
}

// The far slot always shows the 1000.0 placeholder, never the parsed
// sixth viewport value.
func TestReportFarPlaceholder(t *testing.T) {
	mutated := bytes.Replace(inputFile, []byte("-2.000000e+00"), []byte(" 7.770000e+02"), 1)
	reader := bufio.NewReader(bytes.NewReader(mutated))
	vp, err := readViewData(reader, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, 777.0, vp.FarUnused)

	var buf bytes.Buffer
	vp.Report(&buf)
	out := buf.String()
	assert.True(t, strings.Contains(out, "1.000000e+03"))
	assert.False(t, strings.Contains(out, "7.770000e+02"))
}

var reportGolden = `                            node
                          min  max       min            max
displacement Ux            3     7     1.000000e+00   2.000000e+00
displacement Uy            1     5    -3.000000e+00   4.000000e+00
displacement Uz            2     6    -5.000000e-01   6.000000e+00

                        el. gauss pt.
                        min       max         min           max
stress xx               11        21   -1.100000e+00   1.100000e+01
stress yy               12        22   -1.200000e+00   1.200000e+01
stress xy               13        23   -1.300000e+00   1.300000e+01
stress I                14        24   -1.400000e+00   1.400000e+01
stress II               15        25   -1.500000e+00   1.500000e+01

strain xx               31        41   -2.100000e-03   2.100000e-02
strain yy               32        42   -2.200000e-03   2.200000e-02
strain xy               33        43   -2.300000e-03   2.300000e-02
strain I                34        44   -2.400000e-03   2.400000e-02
strain II               35        45   -2.500000e-03   2.500000e-02

Orthographic viewport parameters(right, left, top, bottom, near, far)
   1.250000e+00  -1.250000e+00   1.250000e+00  -1.250000e+00   5.000000e-01   1.000000e+03
Perspective viewport parameters( mesh width and height)
    500    500
Step sizes in x, y, z
   1.000000e-01   1.000000e-01   1.000000e-01
Amplification size
   2.500000e+00
`
