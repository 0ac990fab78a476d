package web

import "iris-eda/dispatch"

// EDARequest 页面和接口的查询参数
type EDARequest struct {
	Mode    string `form:"mode"`
	Feature string `form:"feature"`
	X       string `form:"x"`
	Y       string `form:"y"`
	Kind    string `form:"kind"`
	Format  string `form:"format"` // 只有 /api/summary 使用
}

func (r EDARequest) Params() dispatch.Params {
	return dispatch.Params{
		Mode:    r.Mode,
		Feature: r.Feature,
		X:       r.X,
		Y:       r.Y,
		Kind:    r.Kind,
	}
}
