package attitude

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Below this rotation angle the exponential map switches to its Taylor
// expansion so sin(theta/2)/theta never divides by a vanishing magnitude.
const smallAngle = 1e-6

// Identity returns the no-rotation quaternion.
func Identity() quat.Number {
	return quat.Number{Real: 1}
}

// Pure embeds a vector as a quaternion with zero scalar part.
func Pure(v r3.Vector) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Derivative returns dq/dt = 0.5 * q * (0, w), the quaternion rate of change
// of attitude q under body-frame angular velocity w. This is the Omega
// operator of strapdown kinematics written as a quaternion product.
func Derivative(q quat.Number, w AngularVelocity) quat.Number {
	return quat.Scale(0.5, quat.Mul(q, quat.Number{Imag: w.X, Jmag: w.Y, Kmag: w.Z}))
}

// Exp maps a rotation vector (axis times angle, rad) to the unit quaternion
// rotating by it. For angles below smallAngle the sin(theta/2)/theta factor
// is replaced by its series 1/2 - theta^2/48.
func Exp(v r3.Vector) quat.Number {
	theta := v.Norm()
	var s float64
	if theta < smallAngle {
		s = 0.5 - theta*theta/48
	} else {
		s = math.Sin(theta/2) / theta
	}
	return quat.Number{
		Real: math.Cos(theta / 2),
		Imag: v.X * s,
		Jmag: v.Y * s,
		Kmag: v.Z * s,
	}
}

// Normalize rescales q to unit length. Non-finite components pass through
// unchanged in kind: a NaN input yields a NaN output.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return q
	}
	return quat.Scale(1/n, q)
}

// AngleBetween returns the rotation angle in [0, pi] taking attitude a to
// attitude b. Both inputs are assumed unit.
func AngleBetween(a, b quat.Number) float64 {
	d := quat.Mul(quat.Conj(a), b)
	vn := math.Sqrt(d.Imag*d.Imag + d.Jmag*d.Jmag + d.Kmag*d.Kmag)
	return 2 * math.Atan2(vn, math.Abs(d.Real))
}

// IsFinite reports whether every component of q is finite.
func IsFinite(q quat.Number) bool {
	for _, c := range []float64{q.Real, q.Imag, q.Jmag, q.Kmag} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// EulerAngles extracts aerospace (z-y'-x'') roll, pitch and yaw in radians
// from a unit attitude quaternion. Pitch saturates at +/- pi/2.
func EulerAngles(q quat.Number) (roll, pitch, yaw float64) {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sp := 2 * (w*y - z*x)
	if sp > 1 {
		sp = 1
	} else if sp < -1 {
		sp = -1
	}
	pitch = math.Asin(sp)
	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}
