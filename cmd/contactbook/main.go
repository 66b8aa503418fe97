package main

import (
	"fmt"
	"io"
	"os"

	"contactbook/internal/config"
	"contactbook/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions carries flag values and the state built from them for one run.
type rootOptions struct {
	// Global flags
	configPath string
	dbPath     string
	driver     string
	verbose    bool

	// Operation flags
	add   []string
	dl    []string
	vcard string
	list  bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "contactbook",
		Short: "contactbook - store contacts in a local SQLite database",
		Long: `contactbook keeps name/surname/phone records in a SQLite file and can
list them as a table or export them as vCard 2.1.

Exactly one operation runs per invocation, chosen in this order:
add, delete, export, list.

Examples:
  contactbook --add John Doe +441234567891
  contactbook --dl John Doe +441234567891
  contactbook --list
  contactbook --vcard backup.vcf`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := flagSelection{
				Add:      opts.add,
				Delete:   opts.dl,
				VCard:    opts.vcard,
				VCardSet: cmd.Flags().Changed("vcard"),
				List:     opts.list,

				DefaultVCard: opts.cfg.Export.VCardPath,
			}
			return opts.run(cmd, selectCommand(sel))
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConfigPath, "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database filepath (default: "+config.DefaultDatabasePath+")")
	rootCmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "SQLite driver: sqlite3 (cgo) or sqlite (pure Go)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	// Operation flags
	rootCmd.Flags().StringArrayVar(&opts.add, "add", nil, "Add a new contact, example usage: '--add John Doe +441234567891'")
	rootCmd.Flags().StringArrayVar(&opts.dl, "dl", nil, "Delete an existing contact, example usage: '--dl John Doe +441234567891'")
	rootCmd.Flags().StringVar(&opts.vcard, "vcard", "", "Export all contacts as vCard, appending to the given `file` (without a value: export.vcard_path, "+config.DefaultVCardPath+")")
	rootCmd.Flags().Lookup("vcard").NoOptDefVal = vcardFromConfig
	rootCmd.Flags().BoolVar(&opts.list, "list", false, "List all contacts")

	rootCmd.AddCommand(
		newAddCmd(opts),
		newDeleteCmd(opts),
		newListCmd(opts),
		newExportCmd(opts),
	)

	return rootCmd
}

// setup loads configuration (file, then env, then flags) and the logger.
func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.dbPath != "" {
		cfg.Store.Path = o.dbPath
	}
	if o.driver != "" {
		cfg.Store.Driver = o.driver
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	logging.Named(logger, logging.CategoryBoot).Debug("configuration loaded",
		zap.String("config", o.configPath),
		zap.String("db", cfg.Store.Path),
		zap.String("driver", cfg.Store.Driver))
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if len(args) == 0 {
		// Print help if no arguments are specified
		_ = rootCmd.Help()
		return 0
	}

	rootCmd.SetArgs(normalizeArgs(args))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
