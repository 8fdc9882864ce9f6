package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/smithy-go"
)

// SDKQuerier queries the function inventory through the Lambda API.
type SDKQuerier struct {
	client lambda.ListFunctionsAPIClient
}

// NewSDKQuerier loads the default AWS configuration (environment, shared config, SSO)
// and creates a querier. An empty region keeps the region from that configuration.
func NewSDKQuerier(ctx context.Context, region string) (*SDKQuerier, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSDKQuerierFromClient(lambda.NewFromConfig(awsCfg)), nil
}

// NewSDKQuerierFromClient wraps an existing ListFunctions client.
func NewSDKQuerierFromClient(client lambda.ListFunctionsAPIClient) *SDKQuerier {
	return &SDKQuerier{client: client}
}

// Query implements Querier. Pages are walked until the first function starting with prefix.
func (q *SDKQuerier) Query(ctx context.Context, prefix string) (string, error) {
	paginator := lambda.NewListFunctionsPaginator(q.client, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", describeAPIError(err)
		}
		for _, fn := range page.Functions {
			if name := aws.ToString(fn.FunctionName); strings.HasPrefix(name, prefix) {
				return name, nil
			}
		}
	}
	return "", nil
}

func describeAPIError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("lambda ListFunctions: %s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return fmt.Errorf("lambda ListFunctions: %w", err)
}
