package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/dbforge/yamldb"
	"github.com/dbforge/yamldb/internal/severity"
	"github.com/dbforge/yamldb/loader"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("yamldb v%s\n", yamldb.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := handleCheck(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("yamldb - schema-versioned YAML database tools")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  yamldb <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check      Verify database files against an expected type and version window")
	fmt.Println("  version    Show version information")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Run 'yamldb <command> -h' for command-specific flags.")
}

// checkFlags contains flags for the check command
type checkFlags struct {
	typeName   string
	version    uint
	minVersion uint
	jsonOut    bool
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{}

	fs.StringVar(&flags.typeName, "type", "", "expected database type (required)")
	fs.UintVar(&flags.version, "version", 0, "current schema version (required)")
	fs.UintVar(&flags.minVersion, "min-version", 0, "minimum supported schema version")
	fs.BoolVar(&flags.jsonOut, "json", false, "emit a machine-readable JSON report")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: yamldb check [flags] <file>...\n\n")
		_, _ = fmt.Fprintf(output, "Verify the header compatibility of database files.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  yamldb check -type ITEM_DB -version 3 db/item_db.yml\n")
		_, _ = fmt.Fprintf(output, "  yamldb check -type ITEM_DB -version 3 -min-version 1 -json db/item_db.yml db/import/item_db.yml\n")
	}

	return fs, flags
}

// issue is one diagnostic attached to a checked file.
type issue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// fileReport is the check verdict for one database file.
type fileReport struct {
	File        string  `json:"file"`
	OK          bool    `json:"ok"`
	Version     uint16  `json:"version,omitempty"`
	SizeBytes   int64   `json:"size_bytes,omitempty"`
	ContentHash string  `json:"content_hash,omitempty"`
	LoadTimeMS  float64 `json:"load_time_ms,omitempty"`
	Issues      []issue `json:"issues,omitempty"`
}

// issueCollector implements loader.Logger, turning loader diagnostics into
// report issues. Debug and info output is dropped.
type issueCollector struct {
	issues []issue
}

func (c *issueCollector) Debug(string, ...any) {}
func (c *issueCollector) Info(string, ...any)  {}

func (c *issueCollector) Warn(msg string, attrs ...any) {
	c.issues = append(c.issues, issue{
		Severity: severity.SeverityWarning.String(),
		Message:  formatMessage(msg, attrs),
	})
}

func (c *issueCollector) Error(msg string, attrs ...any) {
	c.issues = append(c.issues, issue{
		Severity: severity.SeverityError.String(),
		Message:  formatMessage(msg, attrs),
	})
}

func (c *issueCollector) With(...any) loader.Logger { return c }

// take returns the collected issues and resets the collector for the next file.
func (c *issueCollector) take() []issue {
	issues := c.issues
	c.issues = nil
	return issues
}

// formatMessage flattens structured attrs into the human-readable message.
func formatMessage(msg string, attrs []any) string {
	for i := 0; i+1 < len(attrs); i += 2 {
		msg += fmt.Sprintf(" %v=%v", attrs[i], attrs[i+1])
	}
	return msg
}

func handleCheck(args []string, out io.Writer) error {
	fs, flags := setupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return fmt.Errorf("check requires at least one file argument")
	}
	if flags.typeName == "" {
		return fmt.Errorf("check requires -type")
	}
	if flags.version == 0 {
		return fmt.Errorf("check requires -version")
	}
	if flags.version > 0xffff || flags.minVersion > 0xffff {
		return fmt.Errorf("versions must fit in 16 bits")
	}

	collector := &issueCollector{}
	db, err := loader.New(flags.typeName, uint16(flags.version), uint16(flags.minVersion),
		loader.WithLogger(collector))
	if err != nil {
		return err
	}

	reports := make([]fileReport, 0, len(files))
	failed := 0
	for _, file := range files {
		rep := checkFile(db, collector, file)
		if !rep.OK {
			failed++
		}
		reports = append(reports, rep)
	}

	if flags.jsonOut {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		printReports(out, reports)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed the compatibility check", failed, len(files))
	}
	return nil
}

func checkFile(db *loader.Database, collector *issueCollector, file string) fileReport {
	rep := fileReport{File: file}

	doc, err := db.Load(file)
	rep.Issues = collector.take()
	if err != nil {
		rep.Issues = append(rep.Issues, issue{
			Severity: severity.SeverityError.String(),
			Message:  err.Error(),
		})
		return rep
	}

	rep.OK = true
	rep.Version = doc.Version
	rep.SizeBytes = doc.SourceSize
	rep.ContentHash = fmt.Sprintf("%016x", doc.ContentHash)
	rep.LoadTimeMS = float64(doc.LoadTime.Microseconds()) / 1000
	return rep
}

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	issueStyle = lipgloss.NewStyle().Faint(true)
)

func printReports(out io.Writer, reports []fileReport) {
	for _, rep := range reports {
		if rep.OK {
			fmt.Fprintf(out, "%s %s (version %d, %d bytes)\n",
				okStyle.Render("OK  "), rep.File, rep.Version, rep.SizeBytes)
		} else {
			fmt.Fprintf(out, "%s %s\n", failStyle.Render("FAIL"), rep.File)
		}
		for _, is := range rep.Issues {
			label := issueStyle.Render(is.Severity)
			if is.Severity == severity.SeverityWarning.String() {
				label = warnStyle.Render(is.Severity)
			}
			fmt.Fprintf(out, "     %s: %s\n", label, is.Message)
		}
	}
}
