package args

type CallbackOption func(string) error

// General options are available to all commands. They can also be set in the "general" section of the
// configuration file.
var General struct {
	Verbose               []bool         `short:"v" long:"verbose"             env:"VERBOSITY"            yaml:"verbose"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `short:"c" long:"config"              env:"BASEXX_CONFIG"        yaml:"-"                  description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `short:"l" long:"log-file"            env:"LOG_FILE"             yaml:"log-file"           description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string         `short:"f" long:"log-format"          env:"LOG_FORMAT"           yaml:"log-format"         description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string         `short:"C" long:"log-color"           env:"LOG_COLOR"            yaml:"log-color"          description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool           `          long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   yaml:"log-full-timestamp" description:"Display full timestamp in logs."`
	LogReportCaller       bool           `          long:"log-report-caller"   env:"LOG_REPORT_CALLER"    yaml:"log-report-caller"  description:"If you wish to add the calling method as a field."`
}
