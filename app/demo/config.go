package demo

// ChatConfig controls the clients used by every demo.
type ChatConfig struct {
	Clients     []string `env:"CHAT_CLIENTS" envDefault:"1,2,3" envSeparator:","`
	Exclude     string   `env:"CHAT_EXCLUDE" envDefault:"2"`
	StopOnError bool     `env:"CHAT_STOP_ON_ERROR" envDefault:"false"`
}

type Config struct {
	Chat ChatConfig

	AppName   string `env:"APP_NAME" envDefault:"chatdemo"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}
