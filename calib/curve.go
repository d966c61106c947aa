// Package calib converts raw thermistor ADC readings into temperatures.
//
// A Curve is a piecewise-linear lookup table sampled every Delta raw units
// starting at Offset. Interpolate evaluates it for any int16 reading: inputs
// outside the table extrapolate along the first or last segment instead of
// indexing out of range.
//
// The five curves used by the 8208/8209 formats are exported as package
// variables. Their points are hand-measured controller tables and must stay
// bit-for-bit identical, because decoded 8209 temperatures depend on them.
package calib

import (
	"fmt"

	"github.com/arloliu/luxdta/errs"
)

// Curve is an immutable calibration table.
type Curve struct {
	name      string
	points    []int32
	offset    int32
	delta     int32
	precision int32
}

// NewCurve creates a calibration curve.
//
// Parameters:
//   - name: Human readable curve name, used in errors and logs
//   - points: Calibrated Y values, at least two
//   - offset: Raw value of the first point
//   - delta: Raw distance between two points, must be positive
//   - precision: Divisor applied to the interpolated Y value, must be non-zero
//
// Returns:
//   - *Curve: The curve, holding its own copy of points
//   - error: ErrInvalidCurve if any constraint is violated
func NewCurve(name string, points []int32, offset, delta, precision int32) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least 2 points, got %d", errs.ErrInvalidCurve, name, len(points))
	}
	if delta <= 0 {
		return nil, fmt.Errorf("%w: %s has non-positive delta %d", errs.ErrInvalidCurve, name, delta)
	}
	if precision == 0 {
		return nil, fmt.Errorf("%w: %s has zero precision", errs.ErrInvalidCurve, name)
	}

	return &Curve{
		name:      name,
		points:    append([]int32(nil), points...),
		offset:    offset,
		delta:     delta,
		precision: precision,
	}, nil
}

func mustCurve(name string, points []int32, offset, delta, precision int32) *Curve {
	c, err := NewCurve(name, points, offset, delta, precision)
	if err != nil {
		panic(err)
	}

	return c
}

// Name returns the curve name.
func (c *Curve) Name() string { return c.name }

// Len returns the number of calibrated points.
func (c *Curve) Len() int { return len(c.points) }

// Point returns the calibrated Y value at index i.
func (c *Curve) Point(i int) int32 { return c.points[i] }

// Offset returns the raw value of the first point.
func (c *Curve) Offset() int32 { return c.offset }

// Delta returns the raw distance between points.
func (c *Curve) Delta() int32 { return c.delta }

// Precision returns the divisor applied to interpolated values.
func (c *Curve) Precision() int32 { return c.precision }

// Segment returns the clamped segment index used for raw.
//
// The index is floor((raw-offset)/delta) clamped to [0, Len()-2], so every
// input maps onto an existing pair of points.
func (c *Curve) Segment(raw int16) int {
	diff := int32(raw) - c.offset
	idx := diff / c.delta
	if diff%c.delta != 0 && diff < 0 {
		idx--
	}

	last := int32(len(c.points) - 2)
	if idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}

	return int(idx)
}

// Interpolate converts a raw reading into a calibrated value.
//
// The slope is computed in single precision and widened, matching the
// controller's reference tables to the last bit. The explicit float64
// conversions keep the compiler from fusing multiply-add pairs.
func (c *Curve) Interpolate(raw int16) float64 {
	idx := c.Segment(raw)

	x1 := int32(idx)*c.delta + c.offset
	x2 := x1 + c.delta
	y1 := c.points[idx]
	y2 := c.points[idx+1]

	slope := float64(float32(y2-y1) / float32(x2-x1))
	intercept := float64(y1) - float64(slope*float64(x1))

	return (float64(slope*float64(raw)) + intercept) / float64(c.precision)
}
