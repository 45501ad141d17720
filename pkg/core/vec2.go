package core

// Vec2 is a 2-component vector, mostly used for stratified/UV samples
// and triangle barycentrics.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}
