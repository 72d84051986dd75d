package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenfmt/tokenfmt/pkg/culture"
	"github.com/tokenfmt/tokenfmt/pkg/datafile"
	"github.com/tokenfmt/tokenfmt/pkg/tokenfmt"
)

var (
	formatDataFiles    []string
	formatSetPairs     []string
	formatAllowMissing bool
	formatNonPublic    bool
	formatLang         string
	formatOut          string
)

// formatCmd is the Cobra command for "tokenfmt format".
var formatCmd = &cobra.Command{
	Use:   "format TEMPLATE",
	Short: "Render a template against data files and --set pairs",
	Long: `Render a template string, substituting its named tokens with values
from the merged data sources. Data files (--data, repeatable) are merged in
order, then --set KEY=VALUE pairs are applied on top; later sources win.

Examples:
  tokenfmt format 'Hello {user.name}!' --set user.name=Ada
  tokenfmt format 'Total: {total:N2}' --data order.yaml --lang de
  tokenfmt format '{greeting?hi} {name?}' --data ctx.json --allow-missing`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := buildSource(formatDataFiles, formatSetPairs)
		if err != nil {
			return err
		}

		opts, err := buildOptions(formatAllowMissing, formatNonPublic, formatLang)
		if err != nil {
			return err
		}

		log().Debug("formatting template",
			"template_len", len(args[0]),
			"data_files", len(formatDataFiles),
			"set_pairs", len(formatSetPairs),
			"allow_missing", formatAllowMissing,
			"non_public", formatNonPublic)

		result, err := tokenfmt.Format(args[0], source, opts...)
		if err != nil {
			return err
		}

		if formatOut != "" {
			return os.WriteFile(formatOut, []byte(result), 0o644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

// buildSource merges the data files and --set pairs into one root map.
// Later sources win over earlier ones.
func buildSource(files, pairs []string) (map[string]any, error) {
	source := map[string]any{}
	for _, path := range files {
		m, err := datafile.Load(path)
		if err != nil {
			return nil, err
		}
		datafile.Merge(source, m)
	}
	for _, pair := range pairs {
		m, err := datafile.ParseSet(pair)
		if err != nil {
			return nil, err
		}
		datafile.Merge(source, m)
	}
	return source, nil
}

// buildOptions translates CLI flags into Format options.
func buildOptions(allowMissing, nonPublic bool, lang string) ([]tokenfmt.Option, error) {
	var opts []tokenfmt.Option
	if allowMissing {
		opts = append(opts, tokenfmt.AllowMissingKeys())
	}
	if nonPublic {
		opts = append(opts, tokenfmt.NonPublicAccess())
	}
	if lang != "" {
		provider, err := culture.Parse(lang)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tokenfmt.WithProvider(provider))
	}
	return opts, nil
}

func init() {
	formatCmd.Flags().StringArrayVar(&formatDataFiles, "data", nil, "Data file (.json, .yaml, .yml); repeatable, merged in order")
	formatCmd.Flags().StringArrayVar(&formatSetPairs, "set", nil, "KEY=VALUE pair; dotted keys nest (user.name=Ada); repeatable")
	formatCmd.Flags().BoolVar(&formatAllowMissing, "allow-missing", false, "Treat missing keys as null instead of failing")
	formatCmd.Flags().BoolVar(&formatNonPublic, "non-public", false, "Widen struct field visibility to unexported fields")
	formatCmd.Flags().StringVar(&formatLang, "lang", "", "BCP-47 language tag for locale-aware format specifiers (e.g. en-US)")
	formatCmd.Flags().StringVar(&formatOut, "out", "", "Write the result to a file instead of stdout")
	rootCmd.AddCommand(formatCmd)
}
