package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/ankitraj/portfolio/internal/app/bootstrap"
	appconfig "github.com/ankitraj/portfolio/internal/config"
	"github.com/ankitraj/portfolio/internal/lambdaproxy"
	"github.com/ankitraj/portfolio/pkg/logging"
)

func main() {
	cfg := appconfig.Load()
	logger := logging.NewWithOptions(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	handler, err := bootstrap.BuildHandler(context.Background(), cfg, logger, bootstrap.Options{})
	if err != nil {
		logger.Error("failed to build handler", "error", err)
		os.Exit(1)
	}

	logger.Info("starting portfolio lambda", "function", cfg.LambdaFunctionName, "region", cfg.AWSRegion)
	lambda.Start(lambdaproxy.New(handler, logger).Handle)
}
