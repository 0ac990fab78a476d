package stats

import (
	"math"
	"sort"
)

// Histogram 等宽直方图
type Histogram struct {
	Edges  []float64 // len(Counts)+1
	Counts []int
}

// BinWidth 单个桶宽度
func (h Histogram) BinWidth() float64 {
	if len(h.Edges) < 2 {
		return 0
	}
	return h.Edges[1] - h.Edges[0]
}

// MaxCount 最高桶的计数
func (h Histogram) MaxCount() int {
	m := 0
	for _, c := range h.Counts {
		if c > m {
			m = c
		}
	}
	return m
}

// AutoBins numpy 'auto' 规则：Sturges 和 Freedman-Diaconis 取较窄的宽度
func AutoBins(v []float64) int {
	data := dropNaN(v)
	n := len(data)
	if n == 0 {
		return 1
	}
	lo, hi := Min(data), Max(data)
	span := hi - lo
	if span == 0 {
		return 1
	}
	sturges := span / (math.Log2(float64(n)) + 1)
	width := sturges
	if iqr := IQR(data); iqr > 0 {
		fd := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
		width = math.Min(fd, sturges)
	}
	bins := int(math.Ceil(span / width))
	if bins < 1 {
		bins = 1
	}
	return bins
}

// FreedmanDiaconisBins seaborn 计算 hexbin gridsize 用的规则
func FreedmanDiaconisBins(v []float64) int {
	data := dropNaN(v)
	n := len(data)
	if n < 2 {
		return 1
	}
	h := 2 * IQR(data) / math.Cbrt(float64(n))
	if h == 0 {
		return int(math.Sqrt(float64(n)))
	}
	return int(math.Ceil((Max(data) - Min(data)) / h))
}

// NewHistogram 按给定桶数切分[min, max]，最后一个桶为闭区间
func NewHistogram(v []float64, bins int) Histogram {
	data := dropNaN(v)
	if bins < 1 {
		bins = 1
	}
	lo, hi := Min(data), Max(data)
	if len(data) == 0 {
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := Linspace(lo, hi, bins+1)
	counts := make([]int, bins)
	for _, x := range data {
		// 右开区间，最后一个桶包含hi
		idx := sort.SearchFloat64s(edges, x)
		if idx < len(edges) && edges[idx] == x {
			idx++
		}
		idx--
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}
	return Histogram{Edges: edges, Counts: counts}
}
