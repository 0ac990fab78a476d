package stats

import (
	"math"

	"github.com/pkg/errors"
)

// Curve 一维曲线
type Curve struct {
	X []float64
	Y []float64
}

// ScottBandwidth 一维 Scott 带宽 std*n^(-1/5)
func ScottBandwidth(v []float64) float64 {
	data := dropNaN(v)
	n := len(data)
	if n < 2 {
		return math.NaN()
	}
	return Std(data) * math.Pow(float64(n), -0.2)
}

// KDE 高斯核密度，cut为带宽的倍数，在[min-cut*bw, max+cut*bw]上取gridSize个点
func KDE(v []float64, gridSize int, cut float64) (Curve, error) {
	data := dropNaN(v)
	bw := ScottBandwidth(data)
	if math.IsNaN(bw) || bw == 0 {
		return Curve{}, errors.New("kde needs at least two distinct values")
	}
	if gridSize < 2 {
		gridSize = 200
	}
	lo := Min(data) - cut*bw
	hi := Max(data) + cut*bw
	xs := Linspace(lo, hi, gridSize)
	ys := make([]float64, gridSize)
	norm := 1 / (float64(len(data)) * bw * math.Sqrt(2*math.Pi))
	for i, x := range xs {
		s := 0.
		for _, d := range data {
			z := (x - d) / bw
			s += math.Exp(-0.5 * z * z)
		}
		ys[i] = s * norm
	}
	return Curve{X: xs, Y: ys}, nil
}

// Scale 曲线纵向缩放，直方图叠加密度线时乘以 n*binWidth
func (c Curve) Scale(f float64) Curve {
	ys := make([]float64, len(c.Y))
	for i, y := range c.Y {
		ys[i] = y * f
	}
	return Curve{X: c.X, Y: ys}
}

// Grid 二维网格上的密度，Z[j][i] 对应 (X[i], Y[j])
type Grid struct {
	X []float64
	Y []float64
	Z [][]float64
}

// KDE2D 二维高斯核密度，带宽矩阵为样本协方差*n^(-1/3)
func KDE2D(xs, ys []float64, gridSize int, cut float64) (Grid, error) {
	px, py := pairs(xs, ys)
	n := len(px)
	if n < 3 {
		return Grid{}, errors.Errorf("kde2d needs at least three points, got %d", n)
	}
	if gridSize < 2 {
		gridSize = 100
	}
	factor := math.Pow(float64(n), -1.0/3.0)
	sxx := Variance(px, Mean(px)) * factor
	syy := Variance(py, Mean(py)) * factor
	sxy := Covariance(px, py) * factor
	det := sxx*syy - sxy*sxy
	if det <= 0 || math.IsNaN(det) {
		return Grid{}, errors.New("kde2d covariance is singular")
	}
	ixx, iyy, ixy := syy/det, sxx/det, -sxy/det
	norm := 1 / (float64(n) * 2 * math.Pi * math.Sqrt(det))

	bx, by := math.Sqrt(sxx), math.Sqrt(syy)
	gx := Linspace(Min(px)-cut*bx, Max(px)+cut*bx, gridSize)
	gy := Linspace(Min(py)-cut*by, Max(py)+cut*by, gridSize)
	z := make([][]float64, gridSize)
	for j, y := range gy {
		z[j] = make([]float64, gridSize)
		for i, x := range gx {
			s := 0.
			for k := 0; k < n; k++ {
				dx := x - px[k]
				dy := y - py[k]
				q := dx*dx*ixx + 2*dx*dy*ixy + dy*dy*iyy
				s += math.Exp(-0.5 * q)
			}
			z[j][i] = s * norm
		}
	}
	return Grid{X: gx, Y: gy, Z: z}, nil
}

// pairs 去掉任一维为空的样本
func pairs(xs, ys []float64) ([]float64, []float64) {
	px := make([]float64, 0, len(xs))
	py := make([]float64, 0, len(ys))
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		px = append(px, xs[i])
		py = append(py, ys[i])
	}
	return px, py
}
