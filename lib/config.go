/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFlag = "config"

type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// LexiconConfig selects where lexicon lookups are served from.
type LexiconConfig struct {
	Backend string
	Dir     string
}

const (
	LocalLexiconBackend = "local"
	RedisLexiconBackend = "redis"
)

type RedisConfig struct {
	Host string
	Port int
}

/**
	InitializeConfig loads the configuration of a binary into targetStruct.

	Values come, highest priority first, from command line flags, environment variables, the yml config file and
	defaultConfig. The config file is defaultPath unless the --config flag names another one; a missing file only
	logs a warning. Flags must be registered on pflag.CommandLine before the call: they are parsed here and bound
	by name, so a flag "sid" overrides the key "sid".

	Environment variables override keys that viper knows about, with "." replaced by "_" and upper cased:
	LEXICON_DIR overrides lexicon.dir.

	The global zerolog level is set from log_level.
**/
func InitializeConfig(defaultPath string, defaultConfig map[string]interface{}, targetStruct interface{}) error {
	if pflag.Lookup(configFlag) == nil {
		pflag.String(configFlag, defaultPath, "The config file path.")
	}
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return err
	}

	for k, v := range defaultConfig {
		viper.SetDefault(k, v)
	}

	if err := readConfigFile(viper.GetString(configFlag)); err != nil {
		return err
	}

	var bc BaseConfig
	if err := viper.Unmarshal(&bc); err != nil {
		return err
	}
	if err := SetLogLevel(bc.LogLevel); err != nil {
		return err
	}

	return viper.Unmarshal(targetStruct)
}

func readConfigFile(configFile string) error {
	if configFile != "" && !filepath.IsAbs(configFile) {
		abs, err := filepath.Abs(configFile)
		if err != nil {
			return err
		}
		configFile = abs
	}
	if configFile != "" {
		viper.SetConfigName(strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile)))
		viper.AddConfigPath(filepath.Dir(configFile))
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Warn().Err(err).Msg("default settings applied")
		return nil
	}
	return err
}

// SetLogLevel sets the global zerolog level, "" meaning no filtering.
func SetLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
