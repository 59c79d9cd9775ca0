package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Start       int           `short:"s" default:"5290" help:"First page id to scrape (inclusive)"`
	End         int           `short:"e" default:"5350" help:"Last page id to scrape (inclusive)"`
	URLTemplate string        `name:"url-template" default:"https://helpcenter.pure.elsevier.com/%d" help:"Page URL template with one %d placeholder"`
	Output      string        `short:"o" default:"help_center_archive.md" help:"Archive output path"`
	Stats       string        `default:"scraper_stats.json" help:"Run statistics output path"`
	DB          string        `env:"HELPARC_DB" help:"Optional SQLite database for run history"`
	Delay       time.Duration `short:"d" default:"500ms" help:"Politeness delay between pages"`
	Timeout     time.Duration `short:"t" default:"15s" help:"Fetch timeout per request"`
	Retries     int           `short:"r" default:"3" help:"Fetch attempts per page"`
	Extractor   string        `enum:"trafilatura,readability" default:"trafilatura" help:"Content extraction engine"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	LogJSON     bool          `name:"log-json" help:"Emit logs as JSON lines"`
}
