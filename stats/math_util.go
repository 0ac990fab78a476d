package stats

import "math"

/*
   基础计算，均跳过NaN
*/

// dropNaN 去掉空值，返回新切片
func dropNaN(v []float64) []float64 {
	res := make([]float64, 0, len(v))
	for _, x := range v {
		if !math.IsNaN(x) {
			res = append(res, x)
		}
	}
	return res
}

// Mean 均值
func Mean(v []float64) float64 {
	var res float64 = 0
	n := 0
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		res += x
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return res / float64(n)
}

// Variance 样本方差(ddof=1)
func Variance(v []float64, m float64) float64 {
	var res float64 = 0
	n := 0
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		res += (x - m) * (x - m)
		n++
	}
	if n < 2 {
		return math.NaN()
	}
	return res / float64(n-1)
}

// Std 样本标准差
func Std(v []float64) float64 {
	return math.Sqrt(Variance(v, Mean(v)))
}

// Max 最大值
func Max(a []float64) float64 {
	m := math.NaN()
	for _, x := range a {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(m) || m < x {
			m = x
		}
	}
	return m
}

// Min 最小值
func Min(a []float64) float64 {
	m := math.NaN()
	for _, x := range a {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(m) || m > x {
			m = x
		}
	}
	return m
}

// Linspace 闭区间等分
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	res := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range res {
		res[i] = lo + step*float64(i)
	}
	res[n-1] = hi
	return res
}

// Covariance 样本协方差(ddof=1)
func Covariance(a, b []float64) float64 {
	ma, mb := Mean(a), Mean(b)
	res := 0.0
	n := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		res += (a[i] - ma) * (b[i] - mb)
		n++
	}
	if n < 2 {
		return math.NaN()
	}
	return res / float64(n-1)
}
