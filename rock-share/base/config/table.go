package config

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TablePrint 以表格形式打印生效的配置，sentry dsn 打码
func TablePrint(cfg *AllConfig, w io.Writer) {
	settings := map[string]interface{}{}
	if err := settingsOf(cfg, settings); err != nil {
		fmt.Fprintf(w, "config print failed: %v\n", err)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Section", Align: text.AlignCenter, AlignHeader: text.AlignCenter, WidthMin: 16},
		{Name: "Key", AlignHeader: text.AlignCenter, WidthMin: 16},
		{Name: "Value", AlignHeader: text.AlignCenter, WidthMax: 60},
	})
	t.SetTitle("EFFECTIVE CONFIG")
	t.AppendHeader(table.Row{"Section", "Key", "Value"}, table.RowConfig{AutoMerge: true})

	sections := make([]string, 0, len(settings))
	for k := range settings {
		sections = append(sections, k)
	}
	sort.Strings(sections)
	for _, section := range sections {
		values, _ := settings[section].(map[string]interface{})
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.AppendRow(table.Row{section, k, values[k]}, table.RowConfig{AutoMerge: true})
		}
		t.AppendSeparator()
	}
	t.Render()
}

func settingsOf(cfg *AllConfig, out map[string]interface{}) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	dsn := cfg.Server.SentryDsn
	if dsn != "" {
		dsn = "******"
	}
	out["server_config"] = map[string]interface{}{
		"http_port":     cfg.Server.HttpPort,
		"gin_mode":      cfg.Server.GinMode,
		"sentry_dsn":    dsn,
		"read_timeout":  cfg.Server.ReadTimeout,
		"write_timeout": cfg.Server.WriteTimeout,
	}
	out["logger_config"] = map[string]interface{}{
		"level":         cfg.Logger.Level,
		"path":          cfg.Logger.Path,
		"max_age":       int64(cfg.Logger.MaxAge),
		"rotation_time": int64(cfg.Logger.RotationTime),
		"rotation_size": cfg.Logger.RotationSize,
	}
	out["page_config"] = map[string]interface{}{
		"title":          cfg.Page.Title,
		"icon":           cfg.Page.Icon,
		"layout":         cfg.Page.Layout,
		"heading":        cfg.Page.Heading,
		"caption":        cfg.Page.Caption,
		"sidebar_header": cfg.Page.SidebarHeader,
		"footer":         cfg.Page.Footer,
	}
	out["dataset_config"] = map[string]interface{}{
		"name":         cfg.Dataset.Name,
		"preview_rows": cfg.Dataset.PreviewRows,
	}
	out["render_config"] = map[string]interface{}{
		"width":         cfg.Render.Width,
		"height":        cfg.Render.Height,
		"panel_size":    cfg.Render.PanelSize,
		"marginal_size": cfg.Render.MarginalSize,
		"dpi":           cfg.Render.DPI,
		"kde_grid":      cfg.Render.KdeGrid,
		"jitter_seed":   cfg.Render.JitterSeed,
	}
	return nil
}
