package main

import (
	"context"

	_ "github.com/cyphera/cyphera-circles/docs"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// @title           Cyphera Circles API
// @version         1.0
// @description     Savings circle reconciliation and testnet faucet API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Web3Auth ID token.

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key

var ginLambda *ginadapter.GinLambda

func init() {
	h, opts, _, err := server.InitializeHandlers(context.Background(), server.ScaledInstances)
	if err != nil {
		logger.Fatal("Failed to initialize API", zap.Error(err))
	}

	r := server.NewRouter(opts.Stage)
	server.InitializeRoutes(r, h, opts)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
