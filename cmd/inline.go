package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anisan-cli/animedex/filesystem"
	"github.com/anisan-cli/animedex/inline"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.PersistentFlags().StringP("output", "O", "", "Write the command output to this file instead of stdout")
}

// inlineCmd prints catalog data without any interaction, for scripts.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print catalog pages and records without interaction",
	Long: `Print catalog pages and records as plain text or JSON.

Record pickers:
  first - first record of the page
  last - last record of the page
  exact - record whose title equals the filter
  [number] - select record by index (starting from 0)`,
}

// inlineOptions builds the options shared by every inline subcommand.
func inlineOptions(cmd *cobra.Command) *inline.Options {
	var writer io.Writer = os.Stdout

	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		file, err := filesystem.API().Create(output)
		handleErr(err)
		writer = file
	}

	return &inline.Options{
		Out:    writer,
		Json:   lo.Must(cmd.Flags().GetBool("json")),
		Picker: mo.None[inline.RecordPicker](),
	}
}

func init() {
	inlineCmd.AddCommand(inlineListCmd)
	addCatalogFlags(inlineListCmd, false)

	inlineListCmd.Flags().StringP("filter", "f", "", "Keep only records whose title fuzzily matches")
	inlineListCmd.Flags().StringP("pick", "P", "", "Print a single record of the page, see inline --help")
}

// inlineListCmd prints one page of the catalog.
var inlineListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Print one page of the catalog",
	Example: "  animedex inline list --page 2 --json\n  animedex inline list --limit 20 --filter bebop --pick first",
	Run: func(cmd *cobra.Command, args []string) {
		params, _, err := startingPoint(cmd)
		handleErr(err)

		options := inlineOptions(cmd)
		options.Params = params
		options.Filter = lo.Must(cmd.Flags().GetString("filter"))

		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			picker, err := inline.ParsePicker(pick, options.Filter)
			handleErr(err)
			options.Picker = mo.Some(picker)
		}

		handleErr(inline.List(kitsu.NewFromConfig(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineShowCmd)
}

// inlineShowCmd prints a single record.
var inlineShowCmd = &cobra.Command{
	Use:     "show [id]",
	Short:   "Print every attribute of a single record",
	Args:    cobra.ExactArgs(1),
	Example: "  animedex inline show 1 --json",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(inline.Show(kitsu.NewFromConfig(), args[0], inlineOptions(cmd)))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("record", "r", false, "Generate the JSON Schema of inline show instead of inline list")
}

// inlineSchemaCmd generates JSON schemas for the JSON outputs of inline mode.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "anime", "output", "record", "attributes":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("record")):
			schema = reflector.Reflect(&inline.Anime{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
