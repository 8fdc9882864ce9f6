// Package invocation runs a single test fixture against a serverless function.
//
// A run goes through a fixed sequence: the fixture is resolved to a declared function,
// in remote mode the deployed name is looked up, the invoking CLI is spawned and the
// captured response is judged. Every run settles into exactly one Kind and is handed
// to the Reporter.
//
// Local mode runs "<sam> local invoke" and captures its stdout in
// <output-dir>/<fixture>.json. Remote mode runs "<aws> lambda invoke", which writes the
// same file itself.
package invocation
