package checker

import (
	"fmt"

	"github.com/openparity/openparity/parityerrors"
	"github.com/openparity/openparity/parser"
)

// Option is a function that configures a check operation
type Option func(*checkConfig) error

// checkConfig holds configuration for a check operation
type checkConfig struct {
	// Input sources (exactly one open and one hosted must be set)
	openFilePath   *string
	openParsed     *parser.ParseResult
	hostedFilePath *string
	hostedParsed   *parser.ParseResult

	tables *Tables
	logger parser.Logger
}

// CheckWithOptions runs a full parity check using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithOpenFilePath("oss_schema.json"),
//	    checker.WithHostedFilePath("cloud_schema.json"),
//	)
func CheckWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("checker: invalid options: %w", err)
	}

	c := &Checker{
		Tables: cfg.tables,
		Logger: cfg.logger,
	}

	p := parser.New()
	p.Logger = cfg.logger

	var open parser.ParseResult
	if cfg.openFilePath != nil {
		openResult, err := p.Parse(*cfg.openFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse open document: %w", err)
		}
		open = *openResult
	} else {
		open = *cfg.openParsed
	}

	var hosted parser.ParseResult
	if cfg.hostedFilePath != nil {
		hostedResult, err := p.Parse(*cfg.hostedFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hosted document: %w", err)
		}
		hosted = *hostedResult
	} else {
		hosted = *cfg.hostedParsed
	}

	return c.CheckParsed(open, hosted)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*checkConfig, error) {
	cfg := &checkConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	openCount := 0
	if cfg.openFilePath != nil {
		openCount++
	}
	if cfg.openParsed != nil {
		openCount++
	}
	if openCount != 1 {
		return nil, &parityerrors.ConfigError{
			Option:  "open",
			Message: "must specify exactly one open document (use WithOpenFilePath or WithOpenParsed)",
		}
	}

	hostedCount := 0
	if cfg.hostedFilePath != nil {
		hostedCount++
	}
	if cfg.hostedParsed != nil {
		hostedCount++
	}
	if hostedCount != 1 {
		return nil, &parityerrors.ConfigError{
			Option:  "hosted",
			Message: "must specify exactly one hosted document (use WithHostedFilePath or WithHostedParsed)",
		}
	}

	return cfg, nil
}

// WithOpenFilePath specifies a file path as the open document
func WithOpenFilePath(path string) Option {
	return func(cfg *checkConfig) error {
		cfg.openFilePath = &path
		return nil
	}
}

// WithOpenParsed specifies a parsed ParseResult as the open document
func WithOpenParsed(result parser.ParseResult) Option {
	return func(cfg *checkConfig) error {
		cfg.openParsed = &result
		return nil
	}
}

// WithHostedFilePath specifies a file path as the hosted document
func WithHostedFilePath(path string) Option {
	return func(cfg *checkConfig) error {
		cfg.hostedFilePath = &path
		return nil
	}
}

// WithHostedParsed specifies a parsed ParseResult as the hosted document
func WithHostedParsed(result parser.ParseResult) Option {
	return func(cfg *checkConfig) error {
		cfg.hostedParsed = &result
		return nil
	}
}

// WithTables replaces the default exception tables for the run
func WithTables(tables *Tables) Option {
	return func(cfg *checkConfig) error {
		if tables == nil {
			return &parityerrors.ConfigError{Option: "tables", Message: "tables must not be nil"}
		}
		cfg.tables = tables
		return nil
	}
}

// WithLogger sets the structured logger used by the parser and checkers
func WithLogger(logger parser.Logger) Option {
	return func(cfg *checkConfig) error {
		cfg.logger = logger
		return nil
	}
}
