// Package inventory finds the deployed name of a declared function.
//
// Deployment tools usually name functions <stack>-<declared name>-<random suffix>.
// Lookup builds the effective prefix from the stack name and the declared name and asks
// a Querier for the first deployed function starting with it. Two queriers exist: the
// cloud CLI (aws lambda list-functions) and the Lambda API through the AWS SDK.
package inventory
