package toolkit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"molstd/pkg/model"
)

const momentTolerance = 1e-9

// CanonicalizeConformer translates the conformer's centroid to the origin and
// rotates it so its principal axes line up with x, y and z in order of
// decreasing spread. Axis signs are fixed by the third moment of the
// projections, falling back to the first clearly non-zero projection, and the
// frame is kept right handed.
func (b *Basic) CanonicalizeConformer(conf *model.Conformer) {
	n := len(conf.Positions)
	if n == 0 {
		return
	}

	var centroid model.Point3D
	for _, p := range conf.Positions {
		centroid.X += p.X
		centroid.Y += p.Y
		centroid.Z += p.Z
	}
	centroid.X /= float64(n)
	centroid.Y /= float64(n)
	centroid.Z /= float64(n)

	centered := make([][3]float64, n)
	cov := make([]float64, 9)
	for i, p := range conf.Positions {
		d := p.Sub(centroid)
		v := [3]float64{d.X, d.Y, d.Z}
		centered[i] = v
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				cov[r*3+c] += v[r] * v[c]
			}
		}
	}

	axes := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	var es mat.EigenSym
	if es.Factorize(mat.NewSymDense(3, cov), true) {
		var vecs mat.Dense
		es.VectorsTo(&vecs)
		// eigenvalues come back ascending
		for k := 0; k < 3; k++ {
			col := 2 - k
			axes[k] = [3]float64{vecs.At(0, col), vecs.At(1, col), vecs.At(2, col)}
		}
	}

	for k := 0; k < 2; k++ {
		if axisSign(centered, axes[k]) < 0 {
			axes[k] = scale(axes[k], -1)
		}
	}
	axes[2] = cross(axes[0], axes[1])

	for i, v := range centered {
		conf.Positions[i] = model.Point3D{
			X: dot(v, axes[0]),
			Y: dot(v, axes[1]),
			Z: dot(v, axes[2]),
		}
	}
}

func axisSign(points [][3]float64, axis [3]float64) float64 {
	third := 0.0
	for _, p := range points {
		proj := dot(p, axis)
		third += proj * proj * proj
	}
	if math.Abs(third) > momentTolerance {
		return third
	}
	for _, p := range points {
		if proj := dot(p, axis); math.Abs(proj) > momentTolerance {
			return proj
		}
	}
	return 1
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func scale(a [3]float64, f float64) [3]float64 {
	return [3]float64{a[0] * f, a[1] * f, a[2] * f}
}
