package viewdata

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extrema is the (min index, max index, min value, max value) tuple
// locating the smallest and largest values of one field over the
// nodes or gauss points of the mesh.
type Extrema struct {
	MinNode, MaxNode int
	Min, Max         float64
}

// Del is the value range, used by the GUI for color scaling.
func (ex Extrema) Del() (del float64) {
	del = ex.Max - ex.Min
	return
}

// TensorExtrema carries one Extrema per stored tensor component: the
// in-plane terms xx, yy, xy plus the two principal values I and II.
// Indices are element gauss point numbers.
type TensorExtrema struct {
	XX, YY, XY, I, II Extrema
}

type TensorDeltas struct {
	XX, YY, XY, I, II float64
}

func (te TensorExtrema) Deltas() (d TensorDeltas) {
	d = TensorDeltas{
		XX: te.XX.Del(),
		YY: te.YY.Del(),
		XY: te.XY.Del(),
		I:  te.I.Del(),
		II: te.II.Del(),
	}
	return
}

// ViewParams holds everything the GUI reloads from the view data
// file: field extrema plus the viewport and meshing parameters. The
// displacement extrema are stored divided by CoordRescale; Report
// multiplies the factor back for display.
type ViewParams struct {
	Ux, Uy, Uz Extrema

	Stress, Strain TensorExtrema

	OrthoRight, OrthoLeft   float64
	OrthoTop, OrthoBottom   float64
	Near                    float64
	FarUnused               float64 // read from the file, never displayed
	MeshWidth, MeshHeight   int
	StepSizeX, StepSizeY    float64
	StepSizeZ, AmplifyStep0 float64

	CoordRescale float64
}

// Deltas computes the displacement ranges in rescaled units together
// with the per-component stress and strain ranges.
func (vp *ViewParams) Deltas() (dUx, dUy, dUz float64, dStress, dStrain TensorDeltas) {
	dUx, dUy, dUz = vp.Ux.Del(), vp.Uy.Del(), vp.Uz.Del()
	dStress = vp.Stress.Deltas()
	dStrain = vp.Strain.Deltas()
	return
}

// AbsoluteMaxU is the largest displacement magnitude over all three
// axes, in rescaled units.
func (vp *ViewParams) AbsoluteMaxU() (absMax float64) {
	vals := []float64{
		vp.Ux.Min, vp.Ux.Max,
		vp.Uy.Min, vp.Uy.Max,
		vp.Uz.Min, vp.Uz.Max,
	}
	for i, v := range vals {
		vals[i] = math.Abs(v)
	}
	absMax = floats.Max(vals)
	return
}
