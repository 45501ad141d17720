package core

import (
	"math"
	"testing"
)

func TestVec3_NormalizeIsUnit(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis", NewVec3(3, 0, 0)},
		{"general", NewVec3(1, 2, 3)},
		{"negative", NewVec3(-4, 5, -6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize().Length()
			if math.Abs(got-1.0) > 1e-9 {
				t.Errorf("Normalize().Length() = %v, want 1", got)
			}
		})
	}
}

func TestVec3_CrossOrthogonal(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product not orthogonal to inputs: %v", c)
	}
	if c.Subtract(NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("cross(x,y) = %v, want (0,0,1)", c)
	}
}

func TestVec3_DotAndLengthSquared(t *testing.T) {
	v := NewVec3(2, 3, 4)
	if math.Abs(v.Dot(v)-v.LengthSquared()) > 1e-12 {
		t.Errorf("v.Dot(v) != v.LengthSquared()")
	}
}
