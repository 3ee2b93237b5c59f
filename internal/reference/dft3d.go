package reference

import (
	"math"
	"math/cmplx"
)

// NaiveRealDFT3D transforms one real channel of an nx*ny*nz volume with
// x fastest. The result keeps bins 0..nx/2 along x, laid out as
// out[(k*ny+j)*(nx/2+1)+i].
func NaiveRealDFT3D(src []float64, nx, ny, nz int) []complex128 {
	cx := nx/2 + 1
	out := make([]complex128, cx*ny*nz)

	for k := range nz {
		for j := range ny {
			for i := range cx {
				var sum complex128

				for z := range nz {
					for y := range ny {
						for x := range nx {
							v := src[(z*ny+y)*nx+x]
							if v == 0 {
								continue
							}

							phase := float64((x*i)%nx)/float64(nx) +
								float64((y*j)%ny)/float64(ny) +
								float64((z*k)%nz)/float64(nz)
							sum += complex(v, 0) * cmplx.Rect(1, -2*math.Pi*phase)
						}
					}
				}

				out[(k*ny+j)*cx+i] = sum
			}
		}
	}

	return out
}
