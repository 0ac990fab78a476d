package stats

import "sort"

// Segment 等值线的一段
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// IsoLevels 按密度质量比例取等值线阈值，props 中的 p 表示线外包含 p 的概率质量
func IsoLevels(g Grid, props []float64) []float64 {
	values := make([]float64, 0, len(g.X)*len(g.Y))
	total := 0.
	for _, row := range g.Z {
		for _, z := range row {
			values = append(values, z)
			total += z
		}
	}
	if len(values) == 0 || total == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	cum := make([]float64, len(values))
	acc := 0.
	for i, v := range values {
		acc += v
		cum[i] = acc / total
	}
	res := make([]float64, 0, len(props))
	for _, p := range props {
		idx := sort.SearchFloat64s(cum, 1-p)
		if idx >= len(values) {
			idx = len(values) - 1
		}
		res = append(res, values[idx])
	}
	return res
}

// DefaultIsoProps 0.05 到 1 的十个比例
func DefaultIsoProps() []float64 {
	return Linspace(0.05, 1, 10)
}

// Contour marching squares 求 level 等值线
func Contour(g Grid, level float64) []Segment {
	var res []Segment
	for j := 0; j+1 < len(g.Y); j++ {
		for i := 0; i+1 < len(g.X); i++ {
			// 四角：左下、右下、右上、左上
			z0 := g.Z[j][i]
			z1 := g.Z[j][i+1]
			z2 := g.Z[j+1][i+1]
			z3 := g.Z[j+1][i]
			idx := 0
			if z0 >= level {
				idx |= 1
			}
			if z1 >= level {
				idx |= 2
			}
			if z2 >= level {
				idx |= 4
			}
			if z3 >= level {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}
			x0, x1 := g.X[i], g.X[i+1]
			y0, y1 := g.Y[j], g.Y[j+1]
			// 四条边上的交点
			bottom := [2]float64{interp(x0, x1, z0, z1, level), y0}
			right := [2]float64{x1, interp(y0, y1, z1, z2, level)}
			top := [2]float64{interp(x0, x1, z3, z2, level), y1}
			left := [2]float64{x0, interp(y0, y1, z0, z3, level)}
			add := func(a, b [2]float64) {
				res = append(res, Segment{X1: a[0], Y1: a[1], X2: b[0], Y2: b[1]})
			}
			switch idx {
			case 1, 14:
				add(left, bottom)
			case 2, 13:
				add(bottom, right)
			case 3, 12:
				add(left, right)
			case 4, 11:
				add(right, top)
			case 6, 9:
				add(bottom, top)
			case 7, 8:
				add(left, top)
			case 5:
				add(left, top)
				add(bottom, right)
			case 10:
				add(left, bottom)
				add(right, top)
			}
		}
	}
	return res
}

func interp(a, b, za, zb, level float64) float64 {
	if za == zb {
		return (a + b) / 2
	}
	return a + (level-za)/(zb-za)*(b-a)
}
