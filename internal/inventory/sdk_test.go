package inventory

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListFunctions serves pre-built pages in order.
type fakeListFunctions struct {
	pages []*lambda.ListFunctionsOutput
	err   error
	calls int
}

func (f *fakeListFunctions) ListFunctions(ctx context.Context, in *lambda.ListFunctionsInput, _ ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++
	return page, nil
}

func functions(names ...string) []lambdatypes.FunctionConfiguration {
	out := make([]lambdatypes.FunctionConfiguration, 0, len(names))
	for _, n := range names {
		out = append(out, lambdatypes.FunctionConfiguration{FunctionName: aws.String(n)})
	}
	return out
}

func TestSDKQuerier_FindsAcrossPages(t *testing.T) {
	client := &fakeListFunctions{pages: []*lambda.ListFunctionsOutput{
		{Functions: functions("billing-Invoice-1", "orders-ListOrders-2"), NextMarker: aws.String("page-2")},
		{Functions: functions("orders-CreateOrder-3", "orders-CreateOrder-4")},
	}}

	name, err := NewSDKQuerierFromClient(client).Query(context.Background(), "orders-CreateOrder")
	require.NoError(t, err)
	assert.Equal(t, "orders-CreateOrder-3", name)
	assert.Equal(t, 2, client.calls)
}

func TestSDKQuerier_NoMatch(t *testing.T) {
	client := &fakeListFunctions{pages: []*lambda.ListFunctionsOutput{
		{Functions: functions("billing-Invoice-1")},
	}}

	_, err := New(NewSDKQuerierFromClient(client)).Lookup(context.Background(), "CreateOrder", "orders")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSDKQuerier_APIError(t *testing.T) {
	client := &fakeListFunctions{err: &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not authorized"}}

	_, err := New(NewSDKQuerierFromClient(client)).Lookup(context.Background(), "CreateOrder", "orders")
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Contains(t, err.Error(), "AccessDeniedException: not authorized")
}
