package imu

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire field numbers for ImuDataProto, per spec.md §6.
const (
	fieldTimestamp = protowire.Number(1)
	fieldAccel     = protowire.Number(2)
	fieldGyro      = protowire.Number(3)
	fieldMag       = protowire.Number(4)
	fieldTemp      = protowire.Number(5)
	fieldQuat      = protowire.Number(6)
	fieldEuler     = protowire.Number(7)
)

// EncodeFrame serializes f as an ImuDataProto message using the protobuf
// wire format directly (no generated .pb.go -- see DESIGN.md). Every
// repeated float field is packed, matching proto3's default packing for
// scalar numeric repeated fields.
func EncodeFrame(f Frame) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldTimestamp, protowire.VarintType)
	b = protowire.AppendVarint(b, f.TimestampMicros)

	b = appendPackedFloats(b, fieldAccel, f.Accel[:])
	b = appendPackedFloats(b, fieldGyro, f.Gyro[:])
	b = appendPackedFloats(b, fieldMag, f.Mag[:])

	b = protowire.AppendTag(b, fieldTemp, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, math.Float32bits(f.TempMilliC))

	b = appendPackedFloats(b, fieldQuat, f.Quaternion[:])
	b = appendPackedFloats(b, fieldEuler, f.Euler[:])
	return b
}

func appendPackedFloats(b []byte, num protowire.Number, vals []float32) []byte {
	content := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		content = protowire.AppendFixed32(content, math.Float32bits(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendBytes(b, content)
	return b
}

// DecodeFrame parses an ImuDataProto message back into a Frame, for a
// Go-side subscriber; the daemon itself never decodes its own publications.
func DecodeFrame(b []byte) (Frame, error) {
	var f Frame
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return f, fmt.Errorf("imu: bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case fieldTimestamp:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return f, fmt.Errorf("imu: bad timestamp: %w", protowire.ParseError(n))
			}
			f.TimestampMicros = v
			b = b[n:]
		case fieldTemp:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return f, fmt.Errorf("imu: bad temp: %w", protowire.ParseError(n))
			}
			f.TempMilliC = math.Float32frombits(v)
			b = b[n:]
		case fieldAccel, fieldGyro, fieldMag, fieldQuat, fieldEuler:
			vals, n, err := consumePackedFloats(b)
			if err != nil {
				return f, err
			}
			b = b[n:]
			switch num {
			case fieldAccel:
				copy(f.Accel[:], vals)
			case fieldGyro:
				copy(f.Gyro[:], vals)
			case fieldMag:
				copy(f.Mag[:], vals)
			case fieldQuat:
				copy(f.Quaternion[:], vals)
			case fieldEuler:
				copy(f.Euler[:], vals)
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return f, fmt.Errorf("imu: bad field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return f, nil
}

func consumePackedFloats(b []byte) ([]float32, int, error) {
	content, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("imu: bad packed field: %w", protowire.ParseError(n))
	}
	out := make([]float32, 0, len(content)/4)
	for len(content) >= 4 {
		v, m := protowire.ConsumeFixed32(content)
		if m < 0 {
			return nil, 0, fmt.Errorf("imu: bad packed float: %w", protowire.ParseError(m))
		}
		out = append(out, math.Float32frombits(v))
		content = content[m:]
	}
	return out, n, nil
}
