package stats

import (
	"math"

	"github.com/pkg/errors"
)

// Fit 最小二乘拟合结果及95%置信带
type Fit struct {
	Slope     float64
	Intercept float64
	X         []float64
	Y         []float64
	Lower     []float64
	Upper     []float64
}

// Predict 拟合值
func (f Fit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// LinearFit 一元线性回归，grid为置信带的采样点数
func LinearFit(xs, ys []float64, grid int) (Fit, error) {
	px, py := pairs(xs, ys)
	n := len(px)
	if n < 3 {
		return Fit{}, errors.Errorf("linear fit needs at least three points, got %d", n)
	}
	mx, my := Mean(px), Mean(py)
	sxx := 0.
	sxy := 0.
	for i := range px {
		sxx += (px[i] - mx) * (px[i] - mx)
		sxy += (px[i] - mx) * (py[i] - my)
	}
	if sxx == 0 {
		return Fit{}, errors.New("linear fit x has zero variance")
	}
	fit := Fit{Slope: sxy / sxx}
	fit.Intercept = my - fit.Slope*mx

	sse := 0.
	for i := range px {
		r := py[i] - fit.Predict(px[i])
		sse += r * r
	}
	se := math.Sqrt(sse / float64(n-2))
	t := tQuantile975(n - 2)

	if grid < 2 {
		grid = 100
	}
	fit.X = Linspace(Min(px), Max(px), grid)
	fit.Y = make([]float64, grid)
	fit.Lower = make([]float64, grid)
	fit.Upper = make([]float64, grid)
	for i, x := range fit.X {
		y := fit.Predict(x)
		half := t * se * math.Sqrt(1/float64(n)+(x-mx)*(x-mx)/sxx)
		fit.Y[i] = y
		fit.Lower[i] = y - half
		fit.Upper[i] = y + half
	}
	return fit, nil
}

// tQuantile975 t分布0.975分位数，Cornish-Fisher 展开
func tQuantile975(df int) float64 {
	const z = 1.959963984540054
	if df <= 0 {
		return math.NaN()
	}
	v := float64(df)
	z3 := z * z * z
	z5 := z3 * z * z
	z7 := z5 * z * z
	z9 := z7 * z * z
	return z +
		(z3+z)/(4*v) +
		(5*z5+16*z3+3*z)/(96*v*v) +
		(3*z7+19*z5+17*z3-15*z)/(384*v*v*v) +
		(79*z9+776*z7+1482*z5-1920*z3-945*z)/(92160*v*v*v*v)
}
