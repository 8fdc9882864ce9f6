// Package report renders invocation outcomes for people and machines: a line per
// fixture on the console as results settle, a summary table at the end of a batch and
// an optional JSON report file.
package report
