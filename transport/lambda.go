package transport

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// LambdaHandler serves API Gateway REST proxy events through an http.Handler.
type LambdaHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewLambdaHandler adapts h for lambda.Start. Multi-value headers and query
// parameters, base64 bodies and the API Gateway request context are carried
// over by the proxy adapter.
func NewLambdaHandler(h http.Handler) LambdaHandler {
	return httpadapter.New(h).ProxyWithContext
}
