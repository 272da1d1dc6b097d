package polyline

// Axes selects a subset of coordinate axes. A path may restrict its length
// metric to a subset, for example [AxesXY] to measure distance in the
// horizontal plane regardless of elevation.
//
// The zero value selects all axes.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ

	AxesXY  = AxisX | AxisY
	AxesXYZ = AxisX | AxisY | AxisZ
)

// Filter returns v with the components of unselected axes zeroed.
func (a Axes) Filter(v Vec3) Vec3 {
	if a == 0 || a == AxesXYZ {
		return v
	}
	var out Vec3
	if a&AxisX != 0 {
		out.X = v.X
	}
	if a&AxisY != 0 {
		out.Y = v.Y
	}
	if a&AxisZ != 0 {
		out.Z = v.Z
	}
	return out
}
