package imu

// Schema is the protobuf IDL for ImuDataProto, served as plain text from
// GET /imuN/schema so clients can regenerate their own stubs.
const Schema = `syntax = "proto3";

message ImuDataProto {
  uint64 timestamp = 1;           // microseconds since Unix epoch
  repeated float accel = 2;       // [ax, ay, az] in g
  repeated float gyro = 3;        // [gx, gy, gz] in rad/s
  repeated float mag = 4;         // [mx, my, mz] in gauss
  float temp = 5;                 // milli-degree Celsius
  repeated float quaternion = 6;  // [qx, qy, qz, qw]
  repeated float euler_angles = 7;// [yaw, pitch, roll] in radians
}
`
