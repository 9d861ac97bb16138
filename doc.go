// Package angle provides a planar angle value type that keeps track of its
// unit.
//
// An Angle is either a radian or a degree measure. Arithmetic, comparison
// and normalization are unit aware; trigonometry converts to radians on the
// fly. Free functions cover the arc functions, the minimal angular distance
// between two angles and the circular mean of a list of angles.
package angle
