package camera

import (
	"testing"

	"github.com/arcflux/pathtracer/pkg/core"
)

func TestPixelStats_AveragesAccumulatedSamples(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewSpectrum(1, 0, 0))
	ps.AddSample(core.NewSpectrum(3, 0, 0))

	got := ps.Color()
	if got.R != 2 {
		t.Errorf("Color().R = %v, want 2 (average of 1 and 3)", got.R)
	}
	if ps.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2", ps.SampleCount)
	}
}

func TestPixelStats_ZeroSamplesIsBlack(t *testing.T) {
	var ps PixelStats
	if !ps.Color().IsBlack() {
		t.Errorf("Color() = %v, want black before any samples", ps.Color())
	}
}

func TestSensor_AddSampleIndexesCorrectPixel(t *testing.T) {
	s := NewSensor(4, 3)
	s.AddSample(2, 1, core.NewSpectrum(5, 5, 5))

	if got := s.Color(2, 1); got.R != 5 {
		t.Errorf("Color(2,1) = %v, want R=5", got)
	}
	if got := s.Color(0, 0); !got.IsBlack() {
		t.Errorf("Color(0,0) = %v, want black (untouched pixel)", got)
	}
}

func TestSensor_TotalSamples(t *testing.T) {
	s := NewSensor(2, 2)
	s.AddSample(0, 0, core.NewSpectrum(1, 1, 1))
	s.AddSample(0, 0, core.NewSpectrum(1, 1, 1))
	s.AddSample(1, 1, core.NewSpectrum(1, 1, 1))

	if got := s.TotalSamples(); got != 3 {
		t.Errorf("TotalSamples() = %d, want 3", got)
	}
}
