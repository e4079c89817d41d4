package model

type Flags struct {
	ConfigFile string
	DataDir    string
	Port       int

	// AWS-specific flags
	Region  string
	Profile string

	// One-shot terminal report instead of serving
	Report bool
	Chart  bool
}
