package resample

// Method selects the resampling kernel.
type Method int

const (
	NearestNeighbour Method = iota
	Bilinear
	Bicubic
)

func (m Method) String() string {
	switch m {
	case NearestNeighbour:
		return "NearestNeighbour"
	case Bilinear:
		return "Bilinear"
	case Bicubic:
		return "Bicubic"
	default:
		return "unknown"
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hermite evaluates the cubic Hermite polynomial through four equally
// spaced samples A,B,C,D at parameter t in [0,1], interpolating between B
// and C.
func hermite(a, b, c, d, t float32) float32 {
	ca := -a/2 + 3*b/2 - 3*c/2 + d/2
	cb := a - 5*b/2 + 2*c - d/2
	cc := -a/2 + c/2
	cd := b
	return ((ca*t+cb)*t+cc)*t + cd
}

// plane accesses a single-channel, row-major float32 source of size
// Ws x Hs; dst is resized to Wt x Ht.
type plane struct {
	w, h int
	get  func(x, y int) float32
}

// resizePlane fills dst (row-major, Wt x Ht) by resampling src with the
// given method. bicubicNoEdgeInset reproduces the Rgb24 bicubic quirk
// (u = x/Wt rather than x/(Wt-1)); every other element kind leaves it
// false.
func resizePlane(src plane, wt, ht int, method Method, bicubicNoEdgeInset bool, maxParallelism int) []float32 {
	dst := make([]float32, wt*ht)
	rowFn := func(y int) {
		switch method {
		case NearestNeighbour:
			resizeRowNearest(src, dst, y, wt, ht)
		case Bilinear:
			resizeRowBilinear(src, dst, y, wt, ht)
		case Bicubic:
			resizeRowBicubic(src, dst, y, wt, ht, bicubicNoEdgeInset)
		}
	}
	runRows(ht, maxParallelism, rowFn)
	return dst
}

func resizeRowNearest(src plane, dst []float32, y, wt, ht int) {
	sy := clampInt((y*src.h)/ht, 0, src.h-1)
	base := y * wt
	for x := 0; x < wt; x++ {
		sx := clampInt((x*src.w)/wt, 0, src.w-1)
		dst[base+x] = src.get(sx, sy)
	}
}

func resizeRowBilinear(src plane, dst []float32, y, wt, ht int) {
	var gy float32
	if ht > 1 {
		gy = float32(y) * float32(src.h-1) / float32(ht)
	}
	y0 := clampInt(int(gy), 0, src.h-1)
	y1 := clampInt(y0+1, 0, src.h-1)
	fy := gy - float32(y0)

	base := y * wt
	for x := 0; x < wt; x++ {
		var gx float32
		if wt > 1 {
			gx = float32(x) * float32(src.w-1) / float32(wt)
		}
		x0 := clampInt(int(gx), 0, src.w-1)
		x1 := clampInt(x0+1, 0, src.w-1)
		fx := gx - float32(x0)

		c00 := src.get(x0, y0)
		c10 := src.get(x1, y0)
		c01 := src.get(x0, y1)
		c11 := src.get(x1, y1)

		top := lerp(c00, c10, fx)
		bottom := lerp(c01, c11, fx)
		dst[base+x] = lerp(top, bottom, fy)
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func resizeRowBicubic(src plane, dst []float32, y, wt, ht int, noEdgeInset bool) {
	var v float32
	if noEdgeInset {
		v = float32(y) / float32(ht)
	} else if ht > 1 {
		v = float32(y) / float32(ht-1)
	}
	yPrime := v*float32(src.h) - 0.5
	yi := int(floor32(yPrime))
	yf := yPrime - float32(yi)

	base := y * wt
	for x := 0; x < wt; x++ {
		var u float32
		if noEdgeInset {
			u = float32(x) / float32(wt)
		} else if wt > 1 {
			u = float32(x) / float32(wt-1)
		}
		xPrime := u*float32(src.w) - 0.5
		xi := int(floor32(xPrime))
		xf := xPrime - float32(xi)

		var cols [4]float32
		for i, dx := range [4]int{-1, 0, 1, 2} {
			var samples [4]float32
			for j, dy := range [4]int{-1, 0, 1, 2} {
				sx := clampInt(xi+dx, 0, src.w-1)
				sy := clampInt(yi+dy, 0, src.h-1)
				samples[j] = src.get(sx, sy)
			}
			cols[i] = hermite(samples[0], samples[1], samples[2], samples[3], yf)
		}
		dst[base+x] = hermite(cols[0], cols[1], cols[2], cols[3], xf)
	}
}

func floor32(v float32) float32 {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return float32(i)
}
