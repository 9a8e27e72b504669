package axis

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/RyanBlaney/sonido-negativo/algorithms/common"
)

const (
	// Steps is the number of key centers around the circle
	Steps = 12

	// StepDegrees is the rotation between neighbouring key centers
	StepDegrees = 360.0 / Steps

	// SymmetryDegrees is the period of the axis overlay. A line through the
	// center looks the same after half a turn.
	SymmetryDegrees = 180.0

	// baseDegrees places the C/G axis half a step clockwise of C, between C
	// and G on the circle of fifths
	baseDegrees = StepDegrees / 2
)

// Angle returns the overlay rotation in degrees for a selector index. The
// index is a position in the selector's reversed storage, so C sits at 11
// and gets no rotation.
func Angle(index int) float64 {
	steps := common.Mod(Steps-1-index, Steps)
	return common.WrapDegrees(float64(steps)*StepDegrees, SymmetryDegrees)
}

// Radians is Angle in radians
func Radians(index int) float64 {
	return common.DegreesToRadians(Angle(index))
}

// FifthsStep returns the clockwise position, in steps from the top, of the
// note with chromatic index chromaticIndex on the circle of fifths
func FifthsStep(chromaticIndex int) int {
	return common.Mod(chromaticIndex*7, Steps)
}

// Overlay is the geometry of the circle-of-fifths drawing the axis is laid
// over. Coordinates are mathematical: y grows upwards, the top of the circle
// is Center + (0, Radius) and positive angles turn clockwise.
type Overlay struct {
	Center r2.Vec
	Radius float64
}

// NewOverlay creates an overlay centered at the origin
func NewOverlay(radius float64) Overlay {
	return Overlay{Radius: radius}
}

// PointAt returns the point on the circle the given number of degrees
// clockwise from the top
func (o Overlay) PointAt(deg float64) r2.Vec {
	top := r2.Add(o.Center, r2.Vec{X: 0, Y: o.Radius})
	return r2.Rotate(top, -common.DegreesToRadians(deg), o.Center)
}

// NotePosition returns where the note with chromaticIndex sits on the circle
// of fifths
func (o Overlay) NotePosition(chromaticIndex int) r2.Vec {
	return o.PointAt(float64(FifthsStep(chromaticIndex)) * StepDegrees)
}

// Endpoints returns the two points where an axis rotated by angle degrees
// meets the circle
func (o Overlay) Endpoints(angle float64) (r2.Vec, r2.Vec) {
	deg := baseDegrees + angle
	return o.PointAt(deg), o.PointAt(deg + SymmetryDegrees)
}

// EndpointsFor returns the axis endpoints for a selector index
func (o Overlay) EndpointsFor(index int) (r2.Vec, r2.Vec) {
	return o.Endpoints(Angle(index))
}
