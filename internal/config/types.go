package config

// EnvPrefix is prepended to every environment variable read by Load, e.g.
// LAMBDA_TEST_EVENTS_DIR. The unprefixed name (EVENTS_DIR) is accepted as a fallback.
const EnvPrefix = "LAMBDA_TEST"

const (
	InventoryCLI = "cli"
	InventorySDK = "sdk"
)

// Config is the complete runtime configuration of a lambdatest run.
// Values come from the environment first and may then be overridden by command line flags.
type Config struct {
	// EventsDir holds one <fixture>.json event file per test fixture.
	EventsDir string `envconfig:"EVENTS_DIR" default:"events"`
	// OutputDir receives one <fixture>.json response file per invocation.
	OutputDir string `envconfig:"OUTPUT_DIR" default:".lambdatest/output"`
	// TemplatePath is the deployment descriptor, e.g. a SAM template.
	TemplatePath string `envconfig:"TEMPLATE" default:"template.yaml"`

	// StackName prefixes declared names when looking up deployed functions.
	StackName string `envconfig:"STACK_NAME"`
	// UsePackageName falls back to the package.json name when StackName is empty.
	UsePackageName bool `envconfig:"USE_PACKAGE_NAME" default:"false"`

	LocalBin   string `envconfig:"LOCAL_BIN" default:"sam"`
	RemoteBin  string `envconfig:"REMOTE_BIN" default:"aws"`
	Inventory  string `envconfig:"INVENTORY" default:"cli"`
	LocatorKey string `envconfig:"LOCATOR_KEY" default:"CodeUri"`

	// Parallel bounds concurrent invocations; 0 runs every fixture at once.
	Parallel int `envconfig:"PARALLEL" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// ReportDir, when set, receives a JSON report of the run.
	ReportDir string `envconfig:"REPORT_DIR"`
}
