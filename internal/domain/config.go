package domain

// Config mirrors ~/.chaincalc/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Display             DisplaySettings `yaml:"display"`
	REPL                REPLSettings    `yaml:"repl"`
	Engine              EngineSettings  `yaml:"engine"`
}

// DisplaySettings controls how values and history are rendered.
type DisplaySettings struct {
	// Decimals is the fixed fraction-digit count; -1 selects the shortest
	// round-trip form.
	Decimals        int  `yaml:"decimals" validate:"gte=-1,lte=17"`
	HumanizeHistory bool `yaml:"humanize_history"`
}

// REPLSettings controls the interactive session.
type REPLSettings struct {
	Prompt      string `yaml:"prompt" validate:"required"`
	ShowBanner  bool   `yaml:"show_banner"`
	WatchConfig bool   `yaml:"watch_config"`
}

// EngineSettings seeds the process-lifetime calculator.
type EngineSettings struct {
	InitialValue float64 `yaml:"initial_value"`
}
