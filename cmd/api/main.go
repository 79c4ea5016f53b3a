package main

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/hiveden/hwprobe/internal/api"
	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/hiveden/hwprobe/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	pflag.String("listen-address", ":8080", "Address the report API listens on")
	pflag.Int("log-verbosity", 1, "Log verbosity for probe diagnostics")
	pflag.Parse()
	viper.BindPFlag("listen_address", pflag.Lookup("listen-address"))
	viper.BindPFlag("log_verbosity", pflag.Lookup("log-verbosity"))

	stdr.SetVerbosity(viper.GetInt("log_verbosity"))
	logger := stdr.New(log.New(os.Stderr, "hwprobe-api: ", log.LstdFlags))

	prober := hw.NewProber(logger)
	if err := prober.CheckCapabilities(context.Background()).Err(); err != nil {
		log.Fatalf("startup check failed: %v", err)
	}

	apiHandler := api.NewAPIHandler(report.NewAssembler(prober, logger), prober)

	r := gin.Default()
	apiHandler.RegisterRoutes(r)

	if err := r.Run(viper.GetString("listen_address")); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
