package main

import (
	"log"

	"github.com/lintang-b-s/intersection-graph/pkg/di/config"
	shortcontext "github.com/lintang-b-s/intersection-graph/pkg/di/context"
	graph_di "github.com/lintang-b-s/intersection-graph/pkg/di/graph"
	kv_di "github.com/lintang-b-s/intersection-graph/pkg/di/kv"
	logger_di "github.com/lintang-b-s/intersection-graph/pkg/di/logger"
	graphHttp "github.com/lintang-b-s/intersection-graph/pkg/http"
	"github.com/lintang-b-s/intersection-graph/pkg/http/usecases"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := shortcontext.New()
	defer cancel()

	if _, err := config.New(); err != nil {
		log.Fatal(err)
	}

	zapLog, cleanup, err := logger_di.New()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	kv, err := kv_di.New(ctx)
	if err != nil {
		zapLog.Fatal("failed to open kv store", zap.Error(err))
	}

	g, err := graph_di.New(zapLog, kv)
	if err != nil {
		zapLog.Fatal("failed to build intersection graph", zap.Error(err))
	}

	graphService := usecases.New(zapLog, g)

	server := graphHttp.NewServer(zapLog)
	if _, err := server.Use(ctx, zapLog, graphService); err != nil {
		zapLog.Fatal("failed to start API server", zap.Error(err))
	}

	serverErrC := make(chan error, 1)
	go func() {
		serverErrC <- server.Wait()
	}()

	select {
	case <-ctx.Done():
		zapLog.Info("shutting down")
	case err := <-serverErrC:
		if err != nil {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}
}
