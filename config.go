package helparc

import (
	"fmt"
	"strings"
	"time"
)

// Default run parameters, matching the help-center the tool was built for.
const (
	DefaultURLTemplate = "https://helpcenter.pure.elsevier.com/%d"
	DefaultUserAgent   = "Mozilla/5.0 (compatible; HelpArchiveScraper/1.0)"
	DefaultTimeout     = 15 * time.Second
	DefaultDelay       = 500 * time.Millisecond
	DefaultMaxRetries  = 3
)

// Config holds the immutable parameters for one scrape run. It is
// constructed once before the run and read-only thereafter.
type Config struct {
	// URLTemplate must contain exactly one %d verb; the page id is
	// substituted into it to form each page address.
	URLTemplate string

	// Headers are attached to every request.
	Headers map[string]string

	// Timeout bounds each individual fetch attempt.
	Timeout time.Duration

	// Delay is the politeness pause between pages.
	Delay time.Duration

	// MaxRetries is the total attempt budget for transient fetch failures.
	MaxRetries int
}

// DefaultConfig returns a Config with the standard header set and
// conservative timing defaults.
func DefaultConfig() *Config {
	return &Config{
		URLTemplate: DefaultURLTemplate,
		Headers: map[string]string{
			"User-Agent":      DefaultUserAgent,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
		},
		Timeout:    DefaultTimeout,
		Delay:      DefaultDelay,
		MaxRetries: DefaultMaxRetries,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.URLTemplate == "" {
		return Errorf(EINVALID, "URL template required")
	}
	if strings.Count(c.URLTemplate, "%d") != 1 {
		return Errorf(EINVALID, "URL template must contain exactly one %%d slot")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	if c.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative")
	}
	if c.MaxRetries < 1 {
		return Errorf(EINVALID, "max retries must be at least 1")
	}
	return nil
}

// PageURL returns the address for a page id.
func (c *Config) PageURL(pageID int) string {
	return fmt.Sprintf(c.URLTemplate, pageID)
}
