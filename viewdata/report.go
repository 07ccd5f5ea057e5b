package viewdata

import (
	"fmt"
	"io"
)

// farDisplay is what the report prints in the far slot. The writer
// stores a placeholder there which the GUI never uses, so the
// original tool echoed this constant instead of the parsed value.
const farDisplay = 1000.0

// Report writes the fixed-layout dump of the reloaded parameters.
// Displacement values are shown multiplied back by CoordRescale.
func (vp *ViewParams) Report(w io.Writer) {
	fmt.Fprintf(w, "                            node\n")
	fmt.Fprintf(w, "                          min  max       min            max\n")
	fmt.Fprintf(w, "displacement Ux        %5d %5d   %14.6e %14.6e\n", vp.Ux.MinNode,
		vp.Ux.MaxNode, vp.Ux.Min*vp.CoordRescale, vp.Ux.Max*vp.CoordRescale)
	fmt.Fprintf(w, "displacement Uy        %5d %5d   %14.6e %14.6e\n", vp.Uy.MinNode,
		vp.Uy.MaxNode, vp.Uy.Min*vp.CoordRescale, vp.Uy.Max*vp.CoordRescale)
	fmt.Fprintf(w, "displacement Uz        %5d %5d   %14.6e %14.6e\n", vp.Uz.MinNode,
		vp.Uz.MaxNode, vp.Uz.Min*vp.CoordRescale, vp.Uz.Max*vp.CoordRescale)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "                        el. gauss pt.\n")
	fmt.Fprintf(w, "                        min       max         min           max\n")
	reportTensor(w, "stress", vp.Stress)
	fmt.Fprintf(w, "\n")
	reportTensor(w, "strain", vp.Strain)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Orthographic viewport parameters(right, left, top, bottom, near, far)\n ")
	fmt.Fprintf(w, "%14.6e %14.6e %14.6e %14.6e %14.6e %14.6e\n", vp.OrthoRight,
		vp.OrthoLeft, vp.OrthoTop, vp.OrthoBottom, vp.Near, farDisplay)
	fmt.Fprintf(w, "Perspective viewport parameters( mesh width and height)\n ")
	fmt.Fprintf(w, "%6d %6d\n", vp.MeshWidth, vp.MeshHeight)
	fmt.Fprintf(w, "Step sizes in x, y, z\n ")
	fmt.Fprintf(w, "%14.6e %14.6e %14.6e\n", vp.StepSizeX, vp.StepSizeY, vp.StepSizeZ)
	fmt.Fprintf(w, "Amplification size\n ")
	fmt.Fprintf(w, "%14.6e\n", vp.AmplifyStep0)
}

func reportTensor(w io.Writer, name string, te TensorExtrema) {
	components := []struct {
		label string
		ex    Extrema
	}{
		{"xx", te.XX}, {"yy", te.YY}, {"xy", te.XY}, {"I", te.I}, {"II", te.II},
	}
	for _, c := range components {
		fmt.Fprintf(w, "%-21s%5d     %5d  %14.6e %14.6e\n", name+" "+c.label,
			c.ex.MinNode, c.ex.MaxNode, c.ex.Min, c.ex.Max)
	}
}
