package main

import (
	"fmt"

	"github.com/Praachee19/Traffictracker/cmd"

	"github.com/spf13/viper"
)

func configureViper() {
	// read config file
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath("/etc/tariff-tracker/")
	viper.AddConfigPath("$HOME/.config/tariff-tracker")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		// a missing config file is fine; all settings have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}
}

func main() {
	configureViper()
	cmd.Execute()
}
