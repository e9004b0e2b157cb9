package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/standin-project/standin/gen"
)

var (
	flagDir        string
	flagPackage    string
	flagInterfaces []string
	flagOut        string
	flagOutPackage string
)

var rootCmd = &cobra.Command{
	Use:   "standingen",
	Short: "Generate substitute stubs for interface contracts",
	Long: `standingen generates forwarding substitute stubs for Go interfaces.

For each requested interface it emits a stub struct whose methods forward to
a standin mock dispatcher, a contract descriptor for the mock factory, and a
typed constructor. The generated file belongs in the package declaring the
interfaces unless --out-package says otherwise.`,
	Example: `  standingen --package . --interface Greeter --out greeter_stub.go
  standingen --package ./internal/service -i Store -i Notifier -o stubs_test.go`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := gen.Generate(gen.Config{
			Dir:        flagDir,
			Package:    flagPackage,
			Interfaces: flagInterfaces,
			OutPackage: flagOutPackage,
		})
		if err != nil {
			return err
		}

		if flagOut == "" || flagOut == "-" {
			_, err = cmd.OutOrStdout().Write(src)
			return err
		}
		return os.WriteFile(flagOut, src, 0o644)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagDir, "dir", "", "directory the package pattern is resolved from")
	rootCmd.Flags().StringVar(&flagPackage, "package", ".", "package pattern to load")
	rootCmd.Flags().StringSliceVarP(&flagInterfaces, "interface", "i", nil, "interface name to generate a stub for (repeatable)")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "-", `output file ("-" writes to stdout)`)
	rootCmd.Flags().StringVar(&flagOutPackage, "out-package", "", "package clause of the generated file (defaults to the source package)")
	cobra.CheckErr(rootCmd.MarkFlagRequired("interface"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
