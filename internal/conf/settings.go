package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	gormlogger "gorm.io/gorm/logger"
)

type Setting struct {
	vp *viper.Viper
}

type FeaturesSettingS struct {
	kv       map[string]string
	suites   map[string][]string
	features map[string]string
}

type LoggerSettingS struct {
	Level string
}

type LoggerFileSettingS struct {
	SavePath string
	FileName string
	FileExt  string
}

type ServerSettingS struct {
	RunMode      string
	HttpIp       string
	HttpPort     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AppSettingS struct {
	DefaultContextTimeout time.Duration
	DefaultPageSize       int
	MaxPageSize           int
	NearbyCandidateLimit  int
	MaxNearbyRadiusKm     float64
}

type DatabaseSettingS struct {
	TablePrefix string
	LogLevel    string
}

type MySQLSettingS struct {
	UserName     string
	Password     string
	Host         string
	DBName       string
	Charset      string
	ParseTime    bool
	MaxIdleConns int
	MaxOpenConns int
}

type RedisSettingS struct {
	Host     string
	Password string
	DB       int
}

type BigCacheIndexSettingS struct {
	MaxIndexSize   int
	HardMaxCacheMB int
	Verbose        bool
	ExpireInSecond time.Duration
}

type ItemSearchS struct {
	MaxUpdateQPS int
	MinWorker    int
}

type MeiliSettingS struct {
	Host   string
	Index  string
	ApiKey string
	Secure bool
}

type NotifySettingS struct {
	Gateway string
	Secret  string
}

func NewSetting(configPath ...string) (*Setting, error) {
	vp := viper.New()
	vp.SetConfigName("config")
	vp.AddConfigPath(".")
	vp.AddConfigPath("custom/")
	for _, path := range configPath {
		if len(path) != 0 {
			vp.AddConfigPath(path)
		}
	}
	vp.SetConfigType("yaml")
	err := vp.ReadInConfig()
	if err != nil {
		return nil, err
	}

	return &Setting{vp}, nil
}

func (s *Setting) ReadSection(k string, v interface{}) error {
	return s.vp.UnmarshalKey(k, v)
}

func (s *Setting) Unmarshal(objects map[string]interface{}) error {
	for k, v := range objects {
		if err := s.vp.UnmarshalKey(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Setting) FeaturesFrom(k string) *FeaturesSettingS {
	sub := s.vp.Sub(k)
	suites := make(map[string][]string)
	kv := make(map[string]string)
	if sub != nil {
		for _, key := range sub.AllKeys() {
			switch v := sub.Get(key).(type) {
			case string:
				kv[key] = v
			case []interface{}:
				suites[key] = sub.GetStringSlice(key)
			}
		}
	}
	return newFeatures(suites, kv)
}

func newFeatures(suites map[string][]string, kv map[string]string) *FeaturesSettingS {
	features := &FeaturesSettingS{
		suites: suites,
		kv:     kv,
	}
	features.UseDefault()
	return features
}

// UseDefault use default suite for features
func (f *FeaturesSettingS) UseDefault() {
	f.Use([]string{"default"}, true)
}

// Use use custom suites for features
func (f *FeaturesSettingS) Use(suite []string, noDefault bool) error {
	if noDefault || f.features == nil {
		f.features = make(map[string]string)
	}
	for _, feature := range f.flatFeatures(suite) {
		f.features[feature] = f.kv[feature]
	}
	return nil
}

func (f *FeaturesSettingS) flatFeatures(suite []string) []string {
	features := make([]string, 0, len(suite)+10)
	for s := suite[:]; len(s) != 0; s = s[1:] {
		item := strings.TrimSpace(strings.ToLower(s[0]))
		if len(item) == 0 {
			continue
		}
		if items, exist := f.suites[item]; exist {
			s = append(s, items...)
		}
		features = append(features, item)
	}
	return features
}

// Cfg get value by key if exist
func (f *FeaturesSettingS) Cfg(key string) (string, bool) {
	key = strings.ToLower(key)
	value, exist := f.features[key]
	return value, exist
}

// CfgIf check expression is true. The expression is either a feature
// name or a "Name = Value" pair.
func (f *FeaturesSettingS) CfgIf(expression string) bool {
	kv := strings.Split(expression, "=")
	key := strings.Trim(strings.ToLower(kv[0]), " ")
	v, ok := f.features[key]
	if len(kv) == 2 && ok && strings.Trim(kv[1], " ") == v {
		return true
	} else if len(kv) == 1 && ok {
		return true
	}
	return false
}

func (s *MySQLSettingS) Dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
		s.UserName,
		s.Password,
		s.Host,
		s.DBName,
		s.Charset,
		s.ParseTime,
	)
}

func (s *DatabaseSettingS) logLevel() gormlogger.LogLevel {
	switch strings.ToLower(s.LogLevel) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

func (s *LoggerSettingS) logLevel() logrus.Level {
	switch strings.ToLower(s.Level) {
	case "panic":
		return logrus.PanicLevel
	case "fatal":
		return logrus.FatalLevel
	case "error":
		return logrus.ErrorLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.DebugLevel
	}
}

func (s *ItemSearchS) maxLoad() (r int) {
	r = 10
	if s.MaxUpdateQPS > 10 {
		r = s.MaxUpdateQPS
	}
	return
}

func (s *ItemSearchS) minWork() (r int) {
	r = 5
	if s.MinWorker > 5 {
		r = s.MinWorker
	}
	return
}

func (s *MeiliSettingS) Endpoint() string {
	return endpoint(s.Host, s.Secure)
}

func endpoint(host string, secure bool) string {
	schema := "http"
	if secure {
		schema = "https"
	}
	return schema + "://" + host
}
