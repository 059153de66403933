package hw

import "math"

// RGB is one pixel. Values are post-gamma, ready for the wire.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Blue  = RGB{0, 0, 255}
)

const gamma = 2.6

// HSV converts hue ∈ [0,1) (wrapping), saturation and value ∈ [0,1] to a
// gamma-corrected RGB pixel. Out-of-range s/v are clamped.
func HSV(h, s, v float64) RGB {
	h = h - math.Floor(h)
	s = clamp01(s)
	v = clamp01(v)

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return RGB{gamma8(r), gamma8(g), gamma8(b)}
}

// Scale dims a pixel by k ∈ [0,1] in linear space.
func (c RGB) Scale(k float64) RGB {
	k = clamp01(k)
	return RGB{
		uint8(float64(c.R) * k),
		uint8(float64(c.G) * k),
		uint8(float64(c.B) * k),
	}
}

func gamma8(x float64) uint8 {
	return uint8(math.Round(math.Pow(clamp01(x), gamma) * 255))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
