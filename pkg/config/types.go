// Copyright 2025 Wikidown Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import "fmt"

// Config is a workspace's wikidown configuration: which files the folder
// scan skips, how many it will load, and whether the optional inline-link
// ([text](target)) reference kind is recognized alongside wikilinks.
type Config struct {
	Exclude    []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	MaxFiles   int      `yaml:"maxFiles,omitempty" json:"maxFiles,omitempty"`
	InlineRefs bool     `yaml:"inlineRefs,omitempty" json:"inlineRefs,omitempty"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.MaxFiles < 0 {
		return fmt.Errorf("maxFiles must not be negative, got %d", c.MaxFiles)
	}
	return nil
}

// defaultExclude is the Exclude list used when a workspace has no config
// of its own, matching common editor/VCS noise. A workspace config that
// sets exclude replaces this list rather than adding to it.
var defaultExclude = []string{".git", ".wikidown", "node_modules"}

// GetDefaultConfig returns the configuration used when a workspace has no
// settings file of its own.
func GetDefaultConfig() *Config {
	return &Config{
		Exclude:    append([]string{}, defaultExclude...),
		MaxFiles:   10000,
		InlineRefs: false,
	}
}
