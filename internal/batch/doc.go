// Package batch runs every fixture found in the events directory against the functions
// declared in the deployment template and collects the settled results into a Summary.
package batch
