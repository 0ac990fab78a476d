package stats

import (
	"math"
	"sort"
)

// LetterValues 增强箱线图的分层结果
// Boxes[0] 为最内层(25%-75%)，往外逐层变细
type LetterValues struct {
	Median   float64
	Boxes    []LetterBox
	Outliers []float64
}

// LetterBox 一层箱体
type LetterBox struct {
	Level int
	Lower float64
	Upper float64
}

// TukeyDepth k = floor(log2 n) - 3，至少为1
func TukeyDepth(n int) int {
	if n < 2 {
		return 1
	}
	k := int(math.Log2(float64(n))) - 3
	if k < 1 {
		k = 1
	}
	return k
}

// LetterValue 计算分层分位数与离群点
func LetterValue(v []float64) LetterValues {
	sorted := dropNaN(v)
	sort.Float64s(sorted)
	if len(sorted) == 0 {
		return LetterValues{Median: math.NaN()}
	}
	k := TukeyDepth(len(sorted))
	res := LetterValues{Median: QuantileSorted(sorted, 0.5)}
	for i := 1; i <= k; i++ {
		p := math.Pow(0.5, float64(i+1))
		res.Boxes = append(res.Boxes, LetterBox{
			Level: i - 1,
			Lower: QuantileSorted(sorted, p),
			Upper: QuantileSorted(sorted, 1-p),
		})
	}
	outer := res.Boxes[len(res.Boxes)-1]
	for _, x := range sorted {
		if x < outer.Lower || x > outer.Upper {
			res.Outliers = append(res.Outliers, x)
		}
	}
	return res
}
