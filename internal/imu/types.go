// Package imu implements the IIO-backed IMU driver, its IIO channel
// discovery, the Madgwick orientation fuser, and the periodic sampler/
// publisher pipeline that broadcasts protobuf frames over a ZMQ PUB
// socket.
package imu

// Sample is one reading, raw axes already scaled, orientation not yet
// fused. Missing axis paths read as 0.0 per spec §4.1.
type Sample struct {
	Accel [3]float32 // g
	Gyro  [3]float32 // rad/s
	Mag   [3]float32 // gauss
	TempMilliC float32
}

// Frame is a published sample: Sample plus the derived orientation.
// Quaternion/euler are always derived, never read from hardware -- their
// presence here is an invariant on every published frame.
type Frame struct {
	TimestampMicros uint64
	Sample
	Quaternion [4]float32 // [x, y, z, w]
	Euler      [3]float32 // [yaw, pitch, roll] radians
}

// Driver is the capability set the publisher depends on.
type Driver interface {
	Name() string
	DeviceType() string
	Init() error
	Deinit() error
	SampleRateHz() float64
	Read() (Sample, error)
}
