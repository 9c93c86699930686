package main

import (
	"fmt"
	"os"

	"github.com/mjwhitta/cli"
)

// Version info
var version = "0.1.0"

// Exit codes
const (
	ExitSuccess = iota
	ExitError
	ExitMissingArg
)

// Global flags
var flags struct {
	cache   string
	dryRun  bool
	verbose bool
	version bool
}

// Positional arguments
var cell, realm string

func init() {
	// Configure cli
	cli.Align = true
	cli.Authors = []string{"aklog authors"}
	cli.Banner = fmt.Sprintf("%s [OPTIONS] <cell> [<realm>]", os.Args[0])
	cli.Info(
		"aklog - Obtain AFS tokens for the in-kernel AFS client (kAFS)",
		"",
		"Reads the afs/<cell> service ticket from the Kerberos credential",
		"cache, reduces its session key to a single-DES rxkad key",
		"(draft-kaduk-afs3-rxkad-k5-kdf), and installs the resulting rxrpc",
		"key into the session keyring.",
		"",
		"The realm defaults to the cell name uppercased. The ticket must",
		"already be in the cache: kinit, then kvno afs/<cell>.",
	)
	cli.ExitStatus(
		"0 - Success",
		"1 - Error",
		"2 - Missing argument",
	)

	// Define flags (short, long, default, description)
	cli.Flag(&flags.cache, "c", "cache", "", "Credential cache path (default: KRB5CCNAME)")
	cli.Flag(&flags.dryRun, "n", "dry-run", false, "Derive the key but do not touch the keyring")
	cli.Flag(&flags.verbose, "v", "verbose", false, "Verbose output")
	cli.Flag(&flags.version, "V", "version", false, "Print version and exit")

	cli.Parse()

	if flags.version {
		fmt.Printf("aklog %s\n", version)
		os.Exit(ExitSuccess)
	}

	if cli.NArg() < 1 || cli.NArg() > 2 {
		cli.Usage(ExitMissingArg)
	}

	cell = cli.Arg(0)
	if cli.NArg() == 2 {
		realm = cli.Arg(1)
	}
}

func main() {
	if err := cmdSetToken(cell, realm); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
