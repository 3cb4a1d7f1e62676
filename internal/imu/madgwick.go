package imu

import "math"

// Madgwick is a gradient-descent orientation filter fusing gyroscope and
// accelerometer samples into a unit quaternion. It holds no reference to
// magnetometer data -- spec.md only requires gyro+accel fusion.
type Madgwick struct {
	beta           float32
	q0, q1, q2, q3 float32
}

// NewMadgwick returns a filter initialized to the identity orientation.
// beta trades convergence speed against steady-state noise; 0.1 is a
// common default for a hand-held or body-worn sensor.
func NewMadgwick(beta float32) *Madgwick {
	return &Madgwick{beta: beta, q0: 1}
}

// Update advances the filter by dt seconds given a gyro reading in rad/s
// and an accel reading in g. Callers are responsible for any axis
// remapping before calling Update -- see publisher.go's (z, y, x) body
// frame convention.
func (m *Madgwick) Update(gx, gy, gz, ax, ay, az float32, dt float32) {
	q0, q1, q2, q3 := m.q0, m.q1, m.q2, m.q3

	qDot1 := 0.5 * (-q1*gx - q2*gy - q3*gz)
	qDot2 := 0.5 * (q0*gx + q2*gz - q3*gy)
	qDot3 := 0.5 * (q0*gy - q1*gz + q3*gx)
	qDot4 := 0.5 * (q0*gz + q1*gy - q2*gx)

	if !(ax == 0 && ay == 0 && az == 0) {
		recipNorm := invSqrt(ax*ax + ay*ay + az*az)
		ax *= recipNorm
		ay *= recipNorm
		az *= recipNorm

		_2q0 := 2 * q0
		_2q1 := 2 * q1
		_2q2 := 2 * q2
		_2q3 := 2 * q3
		_4q0 := 4 * q0
		_4q1 := 4 * q1
		_4q2 := 4 * q2
		_8q1 := 8 * q1
		_8q2 := 8 * q2
		q0q0 := q0 * q0
		q1q1 := q1 * q1
		q2q2 := q2 * q2
		q3q3 := q3 * q3

		s0 := _4q0*q2q2 + _2q2*ax + _4q0*q1q1 - _2q1*ay
		s1 := _4q1*q3q3 - _2q3*ax + 4*q0q0*q1 - _2q0*ay - _4q1 + _8q1*q1q1 + _8q1*q2q2 + _4q1*az
		s2 := 4*q0q0*q2 + _2q0*ax + _4q2*q3q3 - _2q3*ay - _4q2 + _8q2*q1q1 + _8q2*q2q2 + _4q2*az
		s3 := 4*q1q1*q3 - _2q1*ax + 4*q2q2*q3 - _2q2*ay
		recipNorm = invSqrt(s0*s0 + s1*s1 + s2*s2 + s3*s3)
		s0 *= recipNorm
		s1 *= recipNorm
		s2 *= recipNorm
		s3 *= recipNorm

		qDot1 -= m.beta * s0
		qDot2 -= m.beta * s1
		qDot3 -= m.beta * s2
		qDot4 -= m.beta * s3
	}

	q0 += qDot1 * dt
	q1 += qDot2 * dt
	q2 += qDot3 * dt
	q3 += qDot4 * dt

	recipNorm := invSqrt(q0*q0 + q1*q1 + q2*q2 + q3*q3)
	m.q0 = q0 * recipNorm
	m.q1 = q1 * recipNorm
	m.q2 = q2 * recipNorm
	m.q3 = q3 * recipNorm
}

// Quaternion returns the current orientation as [x, y, z, w].
func (m *Madgwick) Quaternion() [4]float32 {
	return [4]float32{m.q1, m.q2, m.q3, m.q0}
}

// Euler returns [yaw, pitch, roll] in radians, derived from the current
// quaternion. Never read from hardware -- always computed.
func (m *Madgwick) Euler() [3]float32 {
	q0, q1, q2, q3 := m.q0, m.q1, m.q2, m.q3
	yaw := math.Atan2(float64(2*(q0*q3+q1*q2)), float64(1-2*(q2*q2+q3*q3)))
	sinp := float64(2 * (q0*q2 - q3*q1))
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	pitch := math.Asin(sinp)
	roll := math.Atan2(float64(2*(q0*q1+q2*q3)), float64(1-2*(q1*q1+q2*q2)))
	return [3]float32{float32(yaw), float32(pitch), float32(roll)}
}

func invSqrt(x float32) float32 {
	return float32(1 / math.Sqrt(float64(x)))
}
