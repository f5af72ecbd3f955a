//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/intersection-graph/pkg/di/config"
	shortcontext "github.com/lintang-b-s/intersection-graph/pkg/di/context"
	graph_di "github.com/lintang-b-s/intersection-graph/pkg/di/graph"
	kv_di "github.com/lintang-b-s/intersection-graph/pkg/di/kv"
	logger_di "github.com/lintang-b-s/intersection-graph/pkg/di/logger"
	"github.com/lintang-b-s/intersection-graph/pkg/graph"
	graphHttp "github.com/lintang-b-s/intersection-graph/pkg/http"
	"github.com/lintang-b-s/intersection-graph/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/intersection-graph/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	graph_di.New,
)

var graphSet = wire.NewSet(
	defaultSet,
	NewGraphService,
	NewGraphAPIServer,
)

func NewGraphService(log *zap.Logger, g *graph.Graph) controllers.GraphService {
	return usecases.New(log, g)
}

func NewGraphAPIServer(ctx context.Context, log *zap.Logger,
	graphService controllers.GraphService) (*graphHttp.Server, error) {
	api := graphHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, graphService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeGraphService() (*graphHttp.Server, func(), error) {

	panic(wire.Build(graphSet))
}
