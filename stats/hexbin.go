package stats

import "math"

// HexCell 一个六边形格子
type HexCell struct {
	X     float64
	Y     float64
	Count int
}

// HexBins 两套交错格点上的六边形计数
type HexBins struct {
	Cells []HexCell
	// 格点间距，六边形顶点为 (X,Y)+[Sx,Sy/3]*HexVertices[i]
	Sx float64
	Sy float64
}

// HexVertices 单位六边形顶点
var HexVertices = [6][2]float64{
	{0.5, -0.5}, {0.5, 0.5}, {0, 1}, {-0.5, 0.5}, {-0.5, -0.5}, {0, -1},
}

// MaxCount 最大计数
func (h HexBins) MaxCount() int {
	m := 0
	for _, c := range h.Cells {
		if c.Count > m {
			m = c.Count
		}
	}
	return m
}

// Polygon 返回格子的六个顶点
func (h HexBins) Polygon(c HexCell) [6][2]float64 {
	var res [6][2]float64
	for i, v := range HexVertices {
		res[i] = [2]float64{c.X + v[0]*h.Sx, c.Y + v[1]*h.Sy/3}
	}
	return res
}

// JointGridSize 两列 FD 桶数(上限50)的均值
func JointGridSize(xs, ys []float64) int {
	bx := FreedmanDiaconisBins(xs)
	if bx > 50 {
		bx = 50
	}
	by := FreedmanDiaconisBins(ys)
	if by > 50 {
		by = 50
	}
	g := (bx + by) / 2
	if g < 1 {
		g = 1
	}
	return g
}

// Hexbin 六边形分箱，只返回计数>=1的格子
func Hexbin(xs, ys []float64, gridSize int) HexBins {
	px, py := pairs(xs, ys)
	if len(px) == 0 {
		return HexBins{}
	}
	nx := gridSize
	if nx < 1 {
		nx = 1
	}
	ny := int(float64(nx) / math.Sqrt(3))
	if ny < 1 {
		ny = 1
	}
	xmin, xmax := Min(px), Max(px)
	ymin, ymax := Min(py), Max(py)
	if xmin == xmax {
		xmin, xmax = xmin-0.5, xmax+0.5
	}
	if ymin == ymax {
		ymin, ymax = ymin-0.5, ymax+0.5
	}
	pad := 1e-9 * (xmax - xmin)
	xmin -= pad
	xmax += pad
	sx := (xmax - xmin) / float64(nx)
	sy := (ymax - ymin) / float64(ny)

	nx1, ny1 := nx+1, ny+1
	lattice1 := make([]int, nx1*ny1)
	lattice2 := make([]int, nx*ny)
	for i := range px {
		ix := (px[i] - xmin) / sx
		iy := (py[i] - ymin) / sy
		ix1, iy1 := math.Round(ix), math.Round(iy)
		ix2, iy2 := math.Floor(ix), math.Floor(iy)
		d1 := (ix-ix1)*(ix-ix1) + 3*(iy-iy1)*(iy-iy1)
		d2 := (ix-ix2-0.5)*(ix-ix2-0.5) + 3*(iy-iy2-0.5)*(iy-iy2-0.5)
		if d1 < d2 {
			a, b := int(ix1), int(iy1)
			if a >= 0 && a < nx1 && b >= 0 && b < ny1 {
				lattice1[a*ny1+b]++
			}
		} else {
			a, b := int(ix2), int(iy2)
			if a >= 0 && a < nx && b >= 0 && b < ny {
				lattice2[a*ny+b]++
			}
		}
	}

	res := HexBins{Sx: sx, Sy: sy}
	for a := 0; a < nx1; a++ {
		for b := 0; b < ny1; b++ {
			if c := lattice1[a*ny1+b]; c > 0 {
				res.Cells = append(res.Cells, HexCell{X: xmin + float64(a)*sx, Y: ymin + float64(b)*sy, Count: c})
			}
		}
	}
	for a := 0; a < nx; a++ {
		for b := 0; b < ny; b++ {
			if c := lattice2[a*ny+b]; c > 0 {
				res.Cells = append(res.Cells, HexCell{X: xmin + (float64(a)+0.5)*sx, Y: ymin + (float64(b)+0.5)*sy, Count: c})
			}
		}
	}
	return res
}
