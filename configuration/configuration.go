// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/difficulty"
	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/progress"
	"github.com/bitmark-inc/noncesearch/proof"
	"github.com/bitmark-inc/noncesearch/publish"
	"github.com/bitmark-inc/noncesearch/util"
)

// basic defaults (directories and files are relative to the "DataDirectory")
const (
	DefaultPreviousSeed = "prevblockhash"
	DefaultPayloadURL   = "https://raw.githubusercontent.com/roxavinante/blockchain/master/records.json"

	defaultMaxCPUUsage    = 50
	defaultGracePeriod    = 5  // seconds
	defaultPayloadTimeout = 10 // seconds
	defaultCacheExpiry    = 120

	defaultLogDirectory = "log"
	defaultLogFile      = "noncesearch.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

const minWorkerCount = 1

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// PayloadType - where the transaction payload comes from
//
// text, if set, is used instead of fetching url
type PayloadType struct {
	URL         string `gluamapper:"url" json:"url"`
	Text        string `gluamapper:"text" json:"text"`
	Timeout     int    `gluamapper:"timeout" json:"timeout"`
	CacheExpiry int    `gluamapper:"cache_expiry" json:"cache_expiry"`
	MaxSize     int64  `gluamapper:"max_size" json:"max_size"` // bytes
}

// ProgressType - per candidate output
type ProgressType struct {
	Log     bool                   `gluamapper:"log" json:"log"`
	Limits  progress.Configuration `gluamapper:"limits" json:"limits"`
	Publish publish.Configuration  `gluamapper:"publish" json:"publish"`
}

// Configuration - all settings for a search
type Configuration struct {
	DataDirectory   string                `gluamapper:"data_directory" json:"data_directory"`
	Difficulty      []int                 `gluamapper:"difficulty" json:"difficulty"`
	DifficultyLimit int                   `gluamapper:"difficulty_limit" json:"difficulty_limit"`
	Workers         int                   `gluamapper:"workers" json:"workers"`
	MaxCPUUsage     int                   `gluamapper:"max_cpu_usage" json:"max_cpu_usage"`
	Algorithm       string                `gluamapper:"algorithm" json:"algorithm"`
	Selection       string                `gluamapper:"selection" json:"selection"`
	HostLabel       string                `gluamapper:"host_label" json:"host_label"`
	PreviousSeed    string                `gluamapper:"previous_seed" json:"previous_seed"`
	RandomSeed      bool                  `gluamapper:"random_seed" json:"random_seed"`
	GracePeriod     int                   `gluamapper:"grace_period" json:"grace_period"`
	Payload         PayloadType           `gluamapper:"payload" json:"payload"`
	Progress        ProgressType          `gluamapper:"progress" json:"progress"`
	Results         publish.Configuration `gluamapper:"results" json:"results"`
	Logging         logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// Default - a complete configuration rooted at directory
func Default(directory string) *Configuration {
	host, _ := os.Hostname()

	return &Configuration{
		DataDirectory:   directory,
		Difficulty:      []int{},
		DifficultyLimit: difficulty.Maximum,
		Workers:         0, // derive from max_cpu_usage
		MaxCPUUsage:     defaultMaxCPUUsage,
		Algorithm:       blockdigest.Default,
		Selection:       string(proof.DefaultSelection),
		HostLabel:       host,
		PreviousSeed:    DefaultPreviousSeed,
		GracePeriod:     defaultGracePeriod,
		Payload: PayloadType{
			URL:         DefaultPayloadURL,
			Timeout:     defaultPayloadTimeout,
			CacheExpiry: defaultCacheExpiry,
			MaxSize:     util.DefaultMaximumSize,
		},
		Progress: ProgressType{
			Limits: progress.Configuration{
				Rate:   progress.DefaultRate,
				Burst:  progress.DefaultBurst,
				Buffer: progress.DefaultBuffer,
			},
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.clone(),
		},
	}
}

// the file's levels are merged into the map, so each
// configuration needs its own
func (m LoglevelMap) clone() map[string]string {
	levels := make(map[string]string, len(m))
	for k, v := range m {
		levels[k] = v
	}
	return levels
}

// GetConfiguration - read decode and verify the configuration file
//
// an empty file name gives the defaults rooted at the current directory
func GetConfiguration(configurationFileName string) (*Configuration, error) {
	if "" == configurationFileName {
		directory, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		options := Default(directory)
		return options, options.Validate()
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default(dataDirectory)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}

	return options, options.Validate()
}

// Validate - normalise values and reject those that cannot work
func (c *Configuration) Validate() error {

	// ensure absolute data directory
	if "" == c.DataDirectory || "~" == c.DataDirectory {
		return fmt.Errorf("path: %q is not a valid directory", c.DataDirectory)
	}
	c.DataDirectory = filepath.Clean(c.DataDirectory)

	if c.DifficultyLimit < difficulty.Minimum || c.DifficultyLimit > difficulty.Maximum {
		return fault.ErrInvalidDifficulty
	}
	for _, d := range c.Difficulty {
		if err := c.CheckDifficulty(d); nil != err {
			return err
		}
	}

	if c.Workers < 0 {
		return fault.ErrInvalidWorkerCount
	}
	if c.MaxCPUUsage <= 0 || c.MaxCPUUsage > 100 {
		c.MaxCPUUsage = defaultMaxCPUUsage
	}

	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))
	if _, err := blockdigest.New(c.Algorithm); nil != err {
		return err
	}

	selection, err := proof.ParseSelection(c.Selection)
	if nil != err {
		return err
	}
	c.Selection = string(selection)

	if c.GracePeriod < 0 {
		return fault.ErrInvalidGracePeriod
	}
	if 0 == c.GracePeriod {
		c.GracePeriod = defaultGracePeriod
	}

	if "" == c.Payload.URL && "" == c.Payload.Text {
		return fault.ErrMissingPayload
	}
	if c.Payload.Timeout <= 0 {
		c.Payload.Timeout = defaultPayloadTimeout
	}
	if c.Payload.CacheExpiry <= 0 {
		c.Payload.CacheExpiry = defaultCacheExpiry
	}
	if c.Payload.MaxSize <= 0 {
		c.Payload.MaxSize = util.DefaultMaximumSize
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("files: %q is not plain name", c.Logging.File)
	}
	c.Logging.Directory = util.EnsureAbsolute(c.DataDirectory, c.Logging.Directory)

	return nil
}

// CheckDifficulty - valid and within the configured limit
func (c *Configuration) CheckDifficulty(d int) error {
	if err := difficulty.Validate(d); nil != err {
		return err
	}
	if d > c.DifficultyLimit {
		return fault.ErrInvalidDifficulty
	}
	return nil
}

// OptimalWorkerCount - explicit worker count, or a share of the CPUs
// given by max_cpu_usage
func (c *Configuration) OptimalWorkerCount(cpuCount int) int {
	if c.Workers > 0 {
		return c.Workers
	}
	if cpuCount < minWorkerCount {
		cpuCount = runtime.NumCPU()
	}

	percentage := float32(c.MaxCPUUsage) / 100
	count := int(float32(cpuCount) * percentage)

	if count <= minWorkerCount {
		return minWorkerCount
	}
	if count > cpuCount {
		return cpuCount
	}
	return count
}

// GracePeriodDuration - grace period as a duration
func (c *Configuration) GracePeriodDuration() time.Duration {
	return time.Duration(c.GracePeriod) * time.Second
}

// PayloadTimeout - HTTP timeout as a duration
func (c *Configuration) PayloadTimeout() time.Duration {
	return time.Duration(c.Payload.Timeout) * time.Second
}

// PayloadCacheExpiry - cache lifetime as a duration
func (c *Configuration) PayloadCacheExpiry() time.Duration {
	return time.Duration(c.Payload.CacheExpiry) * time.Second
}
