// Package config provides configuration management for lambdatest.
//
// Configuration is read from environment variables with envconfig and may then be
// overridden by command line flags. Every variable carries the LAMBDA_TEST_ prefix;
// the bare name is accepted as a fallback:
//
//	LAMBDA_TEST_EVENTS_DIR        directory of <fixture>.json events   (events)
//	LAMBDA_TEST_OUTPUT_DIR        directory of captured responses      (.lambdatest/output)
//	LAMBDA_TEST_TEMPLATE          deployment descriptor                (template.yaml)
//	LAMBDA_TEST_STACK_NAME        prefix of deployed function names
//	LAMBDA_TEST_USE_PACKAGE_NAME  use the package.json name as prefix  (false)
//	LAMBDA_TEST_LOCAL_BIN         local emulator executable            (sam)
//	LAMBDA_TEST_REMOTE_BIN        cloud CLI executable                 (aws)
//	LAMBDA_TEST_INVENTORY         remote name lookup: cli or sdk       (cli)
//	LAMBDA_TEST_LOCATOR_KEY       descriptor attribute to match        (CodeUri)
//	LAMBDA_TEST_PARALLEL          concurrent invocations, 0 = all      (0)
//	LAMBDA_TEST_LOG_LEVEL         debug, info, warn or error           (info)
//	LAMBDA_TEST_REPORT_DIR        write a JSON report into this directory
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	stack, err := config.ResolveStackName(cfg)
package config
