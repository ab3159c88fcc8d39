// Package attitude provides the quaternion kinematics primitives used by the
// strapdown integrators:
//
//   - [AngularVelocity]: body-frame rotation rate, rad/s
//   - [Derivative]: quaternion time-derivative under a body rate
//   - [Exp]: rotation-vector exponential map with a small-angle guard
//   - [Normalize]: renormalization to unit length
//   - [AngleBetween]: rotation-angle distance between two attitudes
//
// Quaternions are gonum quat.Number values in Hamilton convention with the
// scalar part in Real and the body frame on the right of the product, so
// dq/dt = 0.5 * q * (0, w). All values are plain stack-allocated structs;
// nothing in this package holds state.
package attitude
