package stats

import (
	"math"
	"math/rand"
	"sort"
)

// Jitter 均匀抖动，固定种子保证同样的输入得到同样的图
func Jitter(n int, width float64, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	res := make([]float64, n)
	for i := range res {
		res[i] = (r.Float64()*2 - 1) * width
	}
	return res
}

// Beeswarm 计算蜂群图的横向偏移
// values 为值轴上的像素坐标，diameter 为点直径(像素)，返回与 values 同序的偏移(像素)
func Beeswarm(values []float64, diameter float64) []float64 {
	n := len(values)
	offsets := make([]float64, n)
	if n == 0 || diameter <= 0 {
		return offsets
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	type placed struct{ off, val float64 }
	swarm := make([]placed, 0, n)
	d2 := diameter * diameter
	for _, idx := range order {
		y := values[idx]
		if math.IsNaN(y) {
			continue
		}
		// 值轴距离小于直径的邻居
		neighbors := make([]placed, 0)
		for _, p := range swarm {
			if math.Abs(p.val-y) < diameter {
				neighbors = append(neighbors, p)
			}
		}
		candidates := []float64{0}
		for _, p := range neighbors {
			dy := p.val - y
			dx := math.Sqrt(math.Max(d2-dy*dy, 0))
			candidates = append(candidates, p.off-dx, p.off+dx)
		}
		sort.SliceStable(candidates, func(a, b int) bool {
			return math.Abs(candidates[a]) < math.Abs(candidates[b])
		})
		best := candidates[0]
		for _, c := range candidates {
			ok := true
			for _, p := range neighbors {
				dx := p.off - c
				dy := p.val - y
				// 容差避免刚好相切时判为重叠
				if dx*dx+dy*dy < d2-1e-6 {
					ok = false
					break
				}
			}
			if ok {
				best = c
				break
			}
		}
		offsets[idx] = best
		swarm = append(swarm, placed{off: best, val: y})
	}
	return offsets
}
