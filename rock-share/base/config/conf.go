package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// All 全部配置索引
var All *AllConfig

var DefaultPath = "./config"
var DebugPath = "./config"

// InitConfig 初始化读取配置文件，文件不存在时使用默认配置
func InitConfig() {
	v := newViper(DefaultPath, "config")

	// 读取配置
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
		fmt.Printf("config file not found in %s, using defaults\n", DefaultPath)
	} else {
		// 监控配置文件变化
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			log.Printf("Config file changed: %s", e.Name)
		})
	}

	//增量配置
	if os.Getenv("DEBUG") == "true" {
		mergeDebugConfig(v)
	}

	All = load(v)
}

// Load 从指定目录读取config.yml，供测试与工具使用，不修改全局All
func Load(dir string) (*AllConfig, error) {
	v := newViper(dir, "config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	cfg := &AllConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.fillZero()
	return cfg, nil
}

// Default 返回全部默认配置
func Default() *AllConfig {
	v := viper.New()
	setDefaults(v)
	return load(v)
}

func newViper(dir, name string) *viper.Viper {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(name)
	v.SetConfigType("yml")
	setDefaults(v)
	return v
}

func mergeDebugConfig(v *viper.Viper) {
	fmt.Println("debugEnv DEBUG=true")
	newConfigPath := path.Join(DebugPath, "debug.yml")
	exists, _ := isExists(newConfigPath)
	if !exists {
		fmt.Printf("%s not exists\n", newConfigPath)
		return
	}
	fmt.Printf("%s exists\n", newConfigPath)
	v.SetConfigFile(newConfigPath)
	if err := v.MergeInConfig(); err != nil {
		panic(err)
	}
}

func load(v *viper.Viper) *AllConfig {
	// 配置映射到结构体
	cfg := &AllConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(err)
	}
	cfg.fillZero()
	return cfg
}

// fillZero 配置文件里显式写了0的项回退到默认值
func (c *AllConfig) fillZero() {
	if c.Render.Width == 0 {
		c.Render.Width = 800
	}
	if c.Render.Height == 0 {
		c.Render.Height = 500
	}
	if c.Render.PanelSize == 0 {
		c.Render.PanelSize = 220
	}
	if c.Render.MarginalSize == 0 {
		c.Render.MarginalSize = 110
	}
	if c.Render.KdeGrid == 0 {
		c.Render.KdeGrid = 200
	}
	if c.Server.HttpPort == "" {
		c.Server.HttpPort = "8501"
	}
	if c.Dataset.Name == "" {
		c.Dataset.Name = "iris"
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_config.http_port", "8501")
	v.SetDefault("server_config.gin_mode", "release")
	v.SetDefault("server_config.read_timeout", 30)
	v.SetDefault("server_config.write_timeout", 60)

	v.SetDefault("logger_config.level", "info")
	v.SetDefault("logger_config.path", "./logs")
	v.SetDefault("logger_config.max_age", 7)
	v.SetDefault("logger_config.rotation_time", 24)
	v.SetDefault("logger_config.rotation_size", 100)

	v.SetDefault("page_config.title", "IRIS Dataset EDA")
	v.SetDefault("page_config.icon", "🌸")
	v.SetDefault("page_config.layout", "wide")
	v.SetDefault("page_config.heading", "IRIS Dataset – Exploratory Data Analysis")
	v.SetDefault("page_config.caption", "Rendered on the server with go-chart")
	v.SetDefault("page_config.sidebar_header", "EDA Options")
	v.SetDefault("page_config.footer", "🚀 **Served by iris-eda**")

	v.SetDefault("dataset_config.name", "iris")
	v.SetDefault("dataset_config.preview_rows", 0)

	v.SetDefault("render_config.width", 800)
	v.SetDefault("render_config.height", 500)
	v.SetDefault("render_config.panel_size", 220)
	v.SetDefault("render_config.marginal_size", 110)
	v.SetDefault("render_config.dpi", 92)
	v.SetDefault("render_config.kde_grid", 200)
	v.SetDefault("render_config.jitter_seed", 42)
}

// AllConfig 全部配置文件
type AllConfig struct {
	Server  ServerConfig  `mapstructure:"server_config"`
	Logger  LoggerConfig  `mapstructure:"logger_config"`
	Page    PageConfig    `mapstructure:"page_config"`
	Dataset DatasetConfig `mapstructure:"dataset_config"`
	Render  RenderConfig  `mapstructure:"render_config"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	HttpPort     string `mapstructure:"http_port"`
	GinMode      string `mapstructure:"gin_mode"`
	SentryDsn    string `mapstructure:"sentry_dsn"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string        `mapstructure:"level"`
	Path         string        `mapstructure:"path"`
	MaxAge       time.Duration `mapstructure:"max_age"`
	RotationTime time.Duration `mapstructure:"rotation_time"`
	RotationSize uint32        `mapstructure:"rotation_size"`
}

// PageConfig 页面固定配置，在任何输出之前设置
type PageConfig struct {
	Title         string `mapstructure:"title"`
	Icon          string `mapstructure:"icon"`
	Layout        string `mapstructure:"layout"`
	Heading       string `mapstructure:"heading"`
	Caption       string `mapstructure:"caption"`
	SidebarHeader string `mapstructure:"sidebar_header"`
	Footer        string `mapstructure:"footer"`
}

type DatasetConfig struct {
	Name        string `mapstructure:"name"`
	PreviewRows int    `mapstructure:"preview_rows"`
}

// RenderConfig 绘图尺寸相关配置，单位像素
type RenderConfig struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	PanelSize    int     `mapstructure:"panel_size"`
	MarginalSize int     `mapstructure:"marginal_size"`
	DPI          float64 `mapstructure:"dpi"`
	KdeGrid      int     `mapstructure:"kde_grid"`
	JitterSeed   int64   `mapstructure:"jitter_seed"`
}

// 判断所给文件/文件夹是否存在
func isExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
