package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bonomali/sandman/internal/app"
	"github.com/bonomali/sandman/internal/pkgdb"
)

var listCmd = &cobra.Command{
	Use:   "list [name]",
	Short: "List sandboxes or the packages inside one",
	Long: `Without an argument, lists all managed sandboxes with their package
counts. With a sandbox name, lists the package identities registered in
that sandbox's database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return listPackages(args[0])
	}
	return listTable()
}

func listTable() error {
	ctx := context.Background()

	sandboxes, err := listSandboxes()
	if err != nil {
		return fmt.Errorf("failed to list sandboxes: %w", err)
	}

	if len(sandboxes) == 0 {
		logInfo("No sandboxes found. Create one with: sandman new <name>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPACKAGES\tROOT")
	fmt.Fprintln(w, "----\t--------\t----")

	for _, sb := range sandboxes {
		// An unreadable database never fails the listing.
		count := "-"
		if n := countPackages(ctx, sb.Root); n >= 0 {
			count = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", sb.Name, count, sb.Root)
	}

	return w.Flush()
}

func listPackages(name string) error {
	ctx := context.Background()

	sb, err := loadSandbox(name)
	if err != nil {
		return err
	}

	db, err := pkgdb.LocateDb(app.Default.FS, sb.Root)
	if err != nil {
		return err
	}

	packages, err := app.Default.Tool.Packages(ctx, db)
	if err != nil {
		return err
	}

	if len(packages) == 0 {
		logInfo("No packages installed in %s", name)
		return nil
	}

	for _, p := range packages {
		fmt.Println(p.ID)
	}

	return nil
}
