package stats

import (
	"math"
	"sort"
)

// Description 单列描述统计，与 pandas describe 的八项一致
type Description struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Q25   float64 `json:"25%"`
	Q50   float64 `json:"50%"`
	Q75   float64 `json:"75%"`
	Max   float64 `json:"max"`
}

// DescribeLabels 行标签顺序
var DescribeLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Values 按 DescribeLabels 的顺序返回
func (d Description) Values() []float64 {
	return []float64{float64(d.Count), d.Mean, d.Std, d.Min, d.Q25, d.Q50, d.Q75, d.Max}
}

// Describe 计算描述统计，空值不计入
func Describe(v []float64) Description {
	sorted := dropNaN(v)
	sort.Float64s(sorted)
	if len(sorted) == 0 {
		nan := math.NaN()
		return Description{Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	}
	m := Mean(sorted)
	return Description{
		Count: len(sorted),
		Mean:  m,
		Std:   math.Sqrt(Variance(sorted, m)),
		Min:   sorted[0],
		Q25:   QuantileSorted(sorted, 0.25),
		Q50:   QuantileSorted(sorted, 0.5),
		Q75:   QuantileSorted(sorted, 0.75),
		Max:   sorted[len(sorted)-1],
	}
}

// QuantileSorted 线性插值分位数，sorted必须升序且无NaN
func QuantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	pos := float64(n-1) * p
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= n {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

// Quantile 对未排序数据计算分位数
func Quantile(v []float64, p float64) float64 {
	sorted := dropNaN(v)
	sort.Float64s(sorted)
	return QuantileSorted(sorted, p)
}

// IQR 四分位距
func IQR(v []float64) float64 {
	sorted := dropNaN(v)
	sort.Float64s(sorted)
	return QuantileSorted(sorted, 0.75) - QuantileSorted(sorted, 0.25)
}
