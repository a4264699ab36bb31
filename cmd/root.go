// cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Quang-Ng-Duong/DNS-Record/internal/core"
	"github.com/Quang-Ng-Duong/DNS-Record/internal/core/logger" // Import the logger
	"github.com/Quang-Ng-Duong/DNS-Record/internal/dnslookup"
	"github.com/Quang-Ng-Duong/DNS-Record/internal/output"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	version     = "2.0.0" // Define tool version here
	recordFlags []string
	exportJSON  string
	exportCSV   string
	interactive bool
	quiet       bool
	configPath  string
	config      = core.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dns-record [domain]",
	Short: "DNS-Record: comprehensive DNS record lookups from your terminal.",
	Long: `DNS-Record looks up A, AAAA, CNAME, MX, NS, TXT, and SOA records for a
domain, displays them in a readable colored format, and can export the
results to JSON or CSV. Run it with a domain for a one-shot lookup, or
without arguments for an interactive prompt.`,
	Example: `  dns-record google.com
  dns-record google.com -r A -r MX
  dns-record google.com --export-json results.json
  dns-record google.com --export-csv results.csv -q
  dns-record --interactive`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger before any command runs
		if verbose {
			logger.SetupLogger("debug")
		} else {
			logger.SetupLogger(config.Logging.Level)
		}
		if config.Logging.File != "" {
			if err := logger.SetLogFile(config.Logging.File); err != nil {
				color.Yellow("⚠️  Could not open log file %s: %v", config.Logging.File, err)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !quiet {
			printBanner()
		}
		if interactive || len(args) == 0 {
			runInteractive()
			return
		}
		if err := runLookup(args[0]); err != nil {
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// runLookup performs one lookup plus display and exports. Errors are printed
// here; the returned error only signals failure to the caller.
func runLookup(domain string) error {
	types, err := requestedTypes()
	if err != nil {
		color.Red("❌ %v", err)
		return err
	}

	client := dnslookup.NewClient(dnslookup.ClientConfig{
		Nameserver: config.DNS.Nameserver,
		Timeout:    time.Duration(config.DNS.Timeout) * time.Second,
		Lifetime:   time.Duration(config.DNS.Timeout) * time.Second,
		Retries:    config.DNS.Retries,
	})
	aggregator := dnslookup.NewAggregator(client)

	display := config.Display
	if quiet {
		display.UseColors = false
		display.ShowProgress = false
	}
	renderer := output.NewRenderer(display)
	onQuery, stopProgress := renderer.Progress()
	aggregator.OnQuery = onQuery

	result, err := aggregator.Lookup(domain, types)
	stopProgress()
	if err != nil {
		color.Red("❌ %v", err)
		return err
	}

	if !quiet {
		renderer.RenderResult(result)
	}
	return exportResult(result)
}

// exportResult writes the requested export files. A failed export is reported
// but does not invalidate the result or skip the other export.
func exportResult(result *dnslookup.LookupResult) error {
	var firstErr error
	if exportJSON != "" {
		if err := writeExport(result, exportJSON, output.FormatJSON); err != nil {
			firstErr = err
		}
	}
	if exportCSV != "" {
		if err := writeExport(result, exportCSV, output.FormatCSV); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func writeExport(result *dnslookup.LookupResult, path string, format func(*dnslookup.LookupResult, core.ExportSettings) (string, error)) error {
	content, err := format(result, config.Export)
	if err != nil {
		color.Red("❌ Export failed: %v", err)
		return err
	}
	if err := output.WriteOutput(path, content); err != nil {
		color.Red("❌ Failed to write %s: %v", path, err)
		return err
	}
	if !quiet {
		color.Green("✅ DNS records exported to %s", path)
	}
	return nil
}

// requestedTypes resolves the record type set: the --records flags when
// given, otherwise the configured default set.
func requestedTypes() ([]dnslookup.RecordType, error) {
	if len(recordFlags) > 0 {
		return dnslookup.ParseRecordTypes(recordFlags)
	}
	return dnslookup.ParseRecordTypes(config.DNS.RecordTypes)
}

func loadConfigFile() {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		color.Yellow("⚠️  Could not load config %s: %v (using defaults)", configPath, err)
	}
	config = cfg
}

func printBanner() {
	banner := `
 ____  _   _ ____        ____                        _
|  _ \| \ | / ___|      |  _ \ ___  ___ ___  _ __ __| |
| | | |  \| \___ \ _____| |_) / _ \/ __/ _ \| '__/ _' |
| |_| | |\  |___) |_____|  _ <  __/ (_| (_) | | | (_| |
|____/|_| \_|____/      |_| \_\___|\___\___/|_|  \__,_|
`
	color.Cyan(banner)
	color.Magenta("DNS-Record v%s - Enhanced DNS Record Lookup Tool", version)
	fmt.Println()
}

func init() {
	// Add global flags here
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML or JSON)")
	rootCmd.Flags().StringSliceVarP(&recordFlags, "records", "r", nil, "Record types to fetch (A, AAAA, CNAME, MX, NS, TXT, SOA; default: all)")
	rootCmd.Flags().StringVarP(&exportJSON, "export-json", "j", "", "Export results to JSON file")
	rootCmd.Flags().StringVarP(&exportCSV, "export-csv", "c", "", "Export results to CSV file")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run in interactive mode")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress banner, progress, and display output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Version}}\r\n")

	cobra.OnInitialize(loadConfigFile)
}
