// SPDX-License-Identifier: EPL-2.0

// Package utils holds per-sample conversions shared by the decoders, the
// resampler and the PCM encoder.
package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to a PCM16 sample.
// Full scale maps to ±32767 so the result is symmetric.
func Float32ToInt16(x float32) int16 {
	x = min(max(x, -1), 1)
	return int16(x * 32767.0)
}

// Int16ToFloat32 normalizes a signed 16-bit sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// IntToFloat32 normalizes a signed integer sample of the given bit depth.
// Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 1 << 7
	case 24:
		scale = 1 << 23
	case 32:
		scale = 1 << 31
	default:
		scale = 1 << 15
	}

	return float32(v) / scale
}
