// Package descriptor loads deployment templates and locates declared functions in them.
//
// A template is parsed once into an immutable tree of Node values (mapping, sequence
// or scalar). Mapping entries keep the order in which they appear in the file, which
// makes resolution deterministic when several resources share a locator suffix.
//
// Resolution walks mappings depth-first looking for the locator attribute (CodeUri by
// default). When its value ends with the fixture name, the key two levels above the
// locator names the resource:
//
//	Resources:
//	  CreateOrderFunction:          <- returned
//	    Type: AWS::Serverless::Function
//	    Properties:
//	      CodeUri: src/create-order <- matched by fixture "create-order"
//
// Resources declared deeper than that below their identifying key are not resolved.
package descriptor
