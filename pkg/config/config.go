/*
 *
 *  * Licensed to the Apache Software Foundation (ASF) under one or more
 *  * contributor license agreements.  See the NOTICE file distributed with
 *  * this work for additional information regarding copyright ownership.
 *  * The ASF licenses this file to You under the Apache License, Version 2.0
 *  * (the "License"); you may not use this file except in compliance with
 *  * the License.  You may obtain a copy of the License at
 *  *
 *  *     http://www.apache.org/licenses/LICENSE-2.0
 *  *
 *  * Unless required by applicable law or agreed to in writing, software
 *  * distributed under the License is distributed on an "AS IS" BASIS,
 *  * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  * See the License for the specific language governing permissions and
 *  * limitations under the License.
 *
 */

package config

import (
	"strings"

	"github.com/IceFireDB/itype/utils"
	"github.com/pingcap/errors"
	"github.com/spf13/viper"
)

var (
	ErrConfigNotInit       = errors.New("config not init")
	ErrDuplicateInitConfig = errors.New("duplicate init config")
	ErrInvalidFormat       = errors.New("invalid output format")
)

const (
	FormatJSON = "json"
	FormatText = "text"
	FormatSpew = "spew"

	EnvPrefix = "ITYPE"
)

var formats = []string{FormatJSON, FormatText, FormatSpew}

// Global configuration, read-only once InitConfig has returned
var _config *Config

// SetDefaults registers default values and environment binding on viper.
// ITYPE_CODEC_MAX_DEPTH overrides codec.max_depth and so on.
func SetDefaults() {
	viper.SetDefault("codec.max_depth", 100)
	viper.SetDefault("codec.max_line_size", 128000)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("output.format", FormatJSON)
	viper.SetDefault("output.color", true)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func InitConfig() error {
	if _config != nil {
		return ErrDuplicateInitConfig
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return errors.Trace(err)
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	if !ValidFormat(c.Output.Format) {
		return errors.Annotatef(ErrInvalidFormat, "%q", c.Output.Format)
	}
	if c.Codec.MaxDepth < 0 {
		c.Codec.MaxDepth = 0
	}
	if c.Codec.MaxLineSize < 0 {
		c.Codec.MaxLineSize = 0
	}

	_config = &c
	return nil
}

func Get() *Config {
	return _config
}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	return utils.InArray(f, formats)
}
