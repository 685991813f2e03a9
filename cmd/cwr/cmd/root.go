/*
 * Copyright © 2019 National Library of Norway
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package cmd

import (
	"fmt"
	"strings"

	"github.com/cdacos/allegro-cwr/cmd/cwr/cmd/parse"
	"github.com/cdacos/allegro-cwr/cmd/cwr/cmd/roundtrip"
	"github.com/cdacos/allegro-cwr/cmd/cwr/cmd/validate"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type conf struct {
	cfgFile  string
	logLevel string
}

// NewCommand returns a new cobra.Command implementing the root command for cwr.
func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "cwr",
		Short: "A tool for parsing and validating CWR transmission files",
		Long:  ``,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(c.logLevel)
			if err != nil {
				return fmt.Errorf("'%s' is not part of the valid levels: 'panic', 'fatal', 'error', 'warn', 'warning', 'info', 'debug', 'trace'", c.logLevel)
			}
			log.SetLevel(level)
			return nil
		},
	}

	cobra.OnInitialize(func() { c.initConfig() })

	cmd.PersistentFlags().StringVarP(&c.logLevel, "log-level", "l", "info", "fatal, error, warn, info, debug or trace")
	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file. If not set, /etc/cwr/, $HOME/.cwr/ and current working dir will be searched for file config.yaml")
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		log.Fatalf("Failed to bind persistent flags: %v", err)
	}

	cmd.AddCommand(parse.NewCommand())
	cmd.AddCommand(validate.NewCommand())
	cmd.AddCommand(roundtrip.NewCommand())

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func (c *conf) initConfig() {
	viper.SetTypeByDefaultValue(true)

	viper.AutomaticEnv()
	viper.EnvKeyReplacer(strings.NewReplacer("-", "_"))
	if viper.IsSet("config") {
		viper.SetConfigFile(viper.GetString("config"))
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("/etc/cwr/")
		viper.AddConfigPath("$HOME/.cwr")
		viper.AddConfigPath(".")
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
	})

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
		} else {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}
}
