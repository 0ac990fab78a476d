package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"iris-eda/dispatch"
	"iris-eda/rock-share/base/config"
	"iris-eda/rock-share/base/logger"
	"iris-eda/utils"
)

type handler struct {
	dispatcher *dispatch.Dispatcher
	page       config.PageConfig
}

// params 查询参数，页面和接口共用
func params(c *gin.Context) (dispatch.Params, error) {
	var p EDARequest
	if err := c.ShouldBindQuery(&p); err != nil {
		return dispatch.Params{}, errors.Wrapf(utils.ErrParameter, "bind query: %v", err)
	}
	return p.Params(), nil
}

// index 页面，每次请求按当前选择重新计算
func (h *handler) index(c *gin.Context) {
	p, err := params(c)
	if err != nil {
		logger.Warnf("bind %s: %v", c.Request.URL.RawQuery, err)
	}
	frame := h.dispatcher.Frame()
	sel, err := dispatch.Resolve(frame, p, false)
	if err != nil {
		// 没有数值列时退回概览
		logger.Warnf("resolve %+v: %v", p, err)
		sel = dispatch.Overview{}
	}
	mode := sel.Mode()
	data := pageData{
		Page:         h.page,
		SidebarLabel: sidebarLabel,
		Modes:        modeList(frame, mode),
		Mode:         string(mode),
		Header:       mode.Header(),
		Controls:     controlsOf(frame, sel),
	}

	status := http.StatusOK
	artifact, err := h.dispatcher.Dispatch(c.Request.Context(), sel)
	if err != nil {
		logger.Errorf("dispatch %s: %v", mode, err)
		status = utils.HttpStatus(err)
		data.Error = err.Error()
	} else {
		data.fill(artifact)
	}
	c.HTML(status, indexName, data)
}

// plot 只返回图片
func (h *handler) plot(c *gin.Context) {
	sel, ok := h.resolveStrict(c)
	if !ok {
		return
	}
	if !sel.Mode().HasFigure() {
		fail(c, errors.Wrapf(utils.ErrNoFigure, "mode %s", sel.Mode()))
		return
	}
	artifact, err := h.dispatcher.Dispatch(c.Request.Context(), sel)
	if err != nil {
		fail(c, err)
		return
	}
	switch a := artifact.(type) {
	case dispatch.FigureArtifact:
		c.Data(http.StatusOK, "image/png", a.Figure.PNG)
	case dispatch.WarningArtifact:
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"warning": a.Message,
		})
	default:
		fail(c, errors.Wrapf(utils.ErrNoFigure, "mode %s", sel.Mode()))
	}
}

func (h *handler) modes(c *gin.Context) {
	succeed(c, modeList(h.dispatcher.Frame(), ""))
}

func (h *handler) dataset(c *gin.Context) {
	frame := h.dispatcher.Frame()
	succeed(c, gin.H{
		"name":            frame.Name(),
		"title":           frame.Title(),
		"rows":            frame.Len(),
		"columns":         frame.Ncol(),
		"missing_values":  frame.MissingCount(),
		"names":           frame.Names(),
		"dtypes":          frame.Dtypes(),
		"numeric_columns": frame.NumericColumns(),
		"label_column":    frame.LabelColumn(),
		"levels":          frame.Levels(),
		"meta":            frame.Meta(),
	})
}

// summary ?format=text 时返回文本表格
func (h *handler) summary(c *gin.Context) {
	artifact, err := h.dispatcher.Dispatch(c.Request.Context(), dispatch.Summary{})
	if err != nil {
		fail(c, err)
		return
	}
	sm := artifact.(dispatch.SummaryArtifact)
	var req EDARequest
	_ = c.ShouldBindQuery(&req)
	if req.Format == formatText {
		c.String(http.StatusOK, sm.Text()+"\n")
		return
	}
	succeed(c, sm)
}

// render 任意选择的JSON形式，图片只给出描述和尺寸
func (h *handler) render(c *gin.Context) {
	sel, ok := h.resolveStrict(c)
	if !ok {
		return
	}
	artifact, err := h.dispatcher.Dispatch(c.Request.Context(), sel)
	if err != nil {
		fail(c, err)
		return
	}
	succeed(c, gin.H{
		"mode":     sel.Mode(),
		"header":   sel.Mode().Header(),
		"type":     artifact.Type(),
		"artifact": artifact,
	})
}

func (h *handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"dataset": h.dispatcher.Frame().Name(),
		"renders": h.dispatcher.Counters(),
	})
}

func (h *handler) resolveStrict(c *gin.Context) (dispatch.Selection, bool) {
	p, err := params(c)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	sel, err := dispatch.Resolve(h.dispatcher.Frame(), p, true)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return sel, true
}

func succeed(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func fail(c *gin.Context, err error) {
	status := utils.HttpStatus(err)
	body := gin.H{
		"success": false,
		"error":   err.Error(),
	}
	if se, ok := utils.AsServiceError(err); ok {
		body["code"] = se.Code
	}
	if status >= http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, body)
}
