package config

import "os"

// ApplyEnv lets the environment force development mode, whatever the
// config file says.
func (c *Config) ApplyEnv() {
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok && development != "0" {
		c.Mode = "development"
	}
}
