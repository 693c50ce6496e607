// Package flags provides the flags shared by the chain registry commands.
//
// Only flags used by more than one command belong here. Command specific flags are defined next
// to the command.
package flags

import (
	"github.com/spf13/cobra"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// Catalog adds the required persistent --catalog flag holding the path of the chains.json
// catalog.
func Catalog(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("catalog", "c", "", "Path to the chains.json catalog (required)")
	_ = cmd.MarkPersistentFlagRequired("catalog")
}

// Extensions adds the persistent --extensions flag. When empty the embedded extension table is
// used.
func Extensions(cmd *cobra.Command) {
	cmd.PersistentFlags().String("extensions", "", "Path to an extension table YAML file (default: embedded table)")
}

// Config adds the persistent --config flag holding an optional environment config file.
// Environment variables override the file.
func Config(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to an environment config YAML file")
}
