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

type Config struct {
	Codec  CodecS  `mapstructure:"codec"`
	Log    LogS    `mapstructure:"log"`
	Output OutputS `mapstructure:"output"`
}

type CodecS struct {
	// Nested list levels accepted by the parser
	MaxDepth int `mapstructure:"max_depth" json:"max_depth"`
	// Longest wire line accepted, in bytes
	MaxLineSize int `mapstructure:"max_line_size" json:"max_line_size"`
}

type LogS struct {
	Level string `mapstructure:"level" json:"level"`
}

type OutputS struct {
	// json, text or spew
	Format string `mapstructure:"format" json:"format"`
	Color  bool   `mapstructure:"color" json:"color"`
}
