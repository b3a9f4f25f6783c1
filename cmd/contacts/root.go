// Root command for the contacts CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/internal/session"
	"github.com/mesh-intelligence/contacts/internal/snapshot"
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Global flag values.
var flagConfigDir string

var rootCmd = &cobra.Command{
	Use:   "contacts [file]",
	Short: "Contacts is a console address book",
	Long: `Contacts manages a collection of people and organizations through an
interactive menu. The optional positional argument names a previously saved
snapshot to load; changes are written back to the same file.`,
	// Only the first positional argument is honored; extras are ignored.
	Args:         cobra.ArbitraryArgs,
	Version:      contacts.Version,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := paths.ResolveDataFile(arg, cfg.GetString(cfgKeyDataFile))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	book, err := openBook(path, cfg.GetString(cfgKeyBackend), out)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if c, ok := in.(io.Closer); ok {
		defer c.Close()
	}
	session.New(book, in, out).Run()
	return nil
}

// openBook loads the collection for the resolved snapshot path. An empty
// path yields an unbound in-memory collection. A path with no file behind
// it binds the store so the first save creates the file. A load failure
// reports "Cannot load file." once and starts fresh with no bound store;
// the session stays fully usable.
func openBook(path, backend string, out io.Writer) (*types.Contacts, error) {
	if path == "" {
		return types.New(), nil
	}

	store, err := openStore(path, backend)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		book := types.New()
		book.Bind(store)
		return book, nil
	}

	book, err := types.Load(store)
	if err != nil {
		fmt.Fprintln(out, "Cannot load file.")
		return types.New(), nil
	}
	return book, nil
}

// openStore builds the store for path. An empty backend selects by file
// extension; an unknown backend name is a config error.
func openStore(path, backend string) (types.Store, error) {
	if backend == "" {
		backend = types.BackendForPath(path)
	}
	cfg := types.Config{Backend: backend, DataFile: path}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.NewStore(path), nil
	default:
		return snapshot.NewFileStore(path), nil
	}
}
