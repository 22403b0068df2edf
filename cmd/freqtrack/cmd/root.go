/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
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
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"d7y.io/popularity/cmd/dependency"
	"d7y.io/popularity/internal/config"
)

const (
	// FreqtrackEnvPrefix is the environment prefix read by viper.
	FreqtrackEnvPrefix = "freqtrack"
)

// Initialize default freqtrack config.
var (
	cfg     = config.New()
	cfgFile string
)

var freqtrackDescription = `
freqtrack replays operation logs into a frequency tracker and reports the most
frequently seen items. Every line of a log is one operation:

  increase <item>   (also "inc" or "+")
  decrease <item>   (also "dec" or "-")

Blank lines and lines starting with # are ignored.
`

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:               "freqtrack <command> [flags]",
	Short:             "track item popularity from operation logs.",
	Long:              freqtrackDescription,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Bind common persistent flags.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "the path of freqtrack's configuration file")
	flags.Bool("console", cfg.Console, "whether logger output records to the stdout")
	flags.Bool("verbose", cfg.Verbose, "whether logger use debug level")
	flags.String("logdir", cfg.LogDir, "freqtrack log directory")

	for key, name := range map[string]string{
		"console": "console",
		"verbose": "verbose",
		"logDir":  "logdir",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	// Add sub command.
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(dependency.VersionCmd)
}

// initConfig reads the config file and environment variables, flags take precedence.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "read config %s: %s\n", cfgFile, err)
			os.Exit(1)
		}
	}

	viper.SetEnvPrefix(FreqtrackEnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal config: %s\n", err)
		os.Exit(1)
	}
}
