package emath

// Small fixed-size vectors and matrices, used for the color transforms.

import (
	"fmt"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// Use local types so we can hang methods off them
type Vec3 f64.Vec3
type Vec4 f64.Vec4
type Mat3 f64.Mat3 // row major

// Mat3x4 maps a 4-channel camera vector into a 3-component space (e.g. XYZ).
type Mat3x4 [3][4]float64

// Mat4x3 maps a 3-component vector into the 4 camera channels.
type Mat4x3 [4][3]float64

func (a Mat3) Mult(b Mat3) Mat3 {
	var c Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[3*i+j] += a[3*i+k] * b[3*k+j]
			}
		}
	}
	return c
}

func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[3*0+0]*v[0] + m[3*0+1]*v[1] + m[3*0+2]*v[2],
		m[3*1+0]*v[0] + m[3*1+1]*v[1] + m[3*1+2]*v[2],
		m[3*2+0]*v[0] + m[3*2+1]*v[1] + m[3*2+2]*v[2],
	}
}

// Inverse uses gonum; it fails if the matrix is singular or too badly
// conditioned for the result to be trusted.
func (m Mat3) Inverse() (Mat3, error) {
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(3, 3, m[:])); err != nil {
		return Mat3{}, fmt.Errorf("mat3 inverse: %w", err)
	}
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = inv.At(i, j)
		}
	}
	return out, nil
}

// Extend34 returns m as a 3x4, with a zero weight for the fourth channel.
func (m Mat3) Extend34() Mat3x4 {
	var out Mat3x4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[3*i+j]
		}
	}
	return out
}

// Extend43 returns m as a 4x3, with an all-zero fourth row.
func (m Mat3) Extend43() Mat4x3 {
	var out Mat4x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[3*i+j]
		}
	}
	return out
}

func (m Mat3x4) Apply(v Vec4) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return out
}

func (m Mat4x3) Apply(v Vec3) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// PseudoInverse computes the Moore-Penrose inverse (AᵀA)⁻¹Aᵀ of a 4x3
// matrix. A camera with only three channels has an all-zero fourth row,
// which comes back as an all-zero fourth column.
func PseudoInverse(m Mat4x3) (Mat3x4, error) {
	a := mat.NewDense(4, 3, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, m[i][j])
		}
	}

	var ata, inv, pinv mat.Dense
	ata.Mul(a.T(), a)
	if err := inv.Inverse(&ata); err != nil {
		return Mat3x4{}, fmt.Errorf("pseudoinverse: %w", err)
	}
	pinv.Mul(&inv, a.T())

	var out Mat3x4
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = pinv.At(i, j)
		}
	}
	return out, nil
}

func (m Mat3) String() string {
	str := ""
	for r := 0; r < 3; r++ {
		str += Vec3{m[3*r], m[3*r+1], m[3*r+2]}.String() + "\n"
	}
	return str
}

func (m Mat3x4) String() string {
	str := ""
	for _, row := range m {
		str += Vec4(row).String() + "\n"
	}
	return str
}

func (m Mat4x3) String() string {
	str := ""
	for _, row := range m {
		str += Vec3(row).String() + "\n"
	}
	return str
}

func (v Vec3) String() string {
	return fmt.Sprintf("[% .6f, % .6f, % .6f]", v[0], v[1], v[2])
}

func (v Vec4) String() string {
	return fmt.Sprintf("[% .6f, % .6f, % .6f, % .6f]", v[0], v[1], v[2], v[3])
}
