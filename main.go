package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"gramhaat-backend/internal"
	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/routers"
	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type suites []string

func (s *suites) String() string {
	return strings.Join(*s, ",")
}

func (s *suites) Set(value string) error {
	for _, item := range strings.Split(value, ",") {
		*s = append(*s, strings.TrimSpace(item))
	}
	return nil
}

var (
	noDefaultFeatures bool
	features          suites
	configPath        string
)

func flagParse() {
	flag.BoolVar(&noDefaultFeatures, "no-default-features", false, "whether use default features")
	flag.Var(&features, "features", "use special features")
	flag.StringVar(&configPath, "config", "", "custom config directory")
	flag.Parse()
}

func init() {
	flagParse()
	conf.Initialize(features, noDefaultFeatures, configPath)
	internal.Initialize()
}

func main() {
	gin.SetMode(conf.ServerSetting.RunMode)

	router := routers.NewRouter()
	s := &http.Server{
		Addr:           conf.ServerSetting.HttpIp + ":" + conf.ServerSetting.HttpPort,
		Handler:        router,
		ReadTimeout:    conf.ServerSetting.ReadTimeout,
		WriteTimeout:   conf.ServerSetting.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	fmt.Fprintf(color.Output, "GramHaat service listen on %s\n",
		color.GreenString("http://%s:%s", conf.ServerSetting.HttpIp, conf.ServerSetting.HttpPort),
	)
	if err := s.ListenAndServe(); err != nil {
		logrus.Fatalf("run app failed: %s", err)
	}
}
