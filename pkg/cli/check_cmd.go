package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokenfmt/tokenfmt/pkg/tokenfmt"
)

var checkList bool

// checkCmd is the Cobra command for "tokenfmt check".
var checkCmd = &cobra.Command{
	Use:   "check TEMPLATE...",
	Short: "Validate template syntax without resolving any data",
	Long: `Validate one or more templates. Each template is scanned and its token
declarations parsed; no data source is consulted, so only syntax errors
(unmatched braces, empty tokens, empty keys) are reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, tmpl := range args {
			tokens, err := tokenfmt.Tokens(tmpl)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %q: %v\n", tmpl, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK   %q (%d tokens)\n", tmpl, len(tokens))
			if checkList {
				for _, tok := range tokens {
					fmt.Fprintf(cmd.OutOrStdout(), "     {%s}\n", tok)
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d templates failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkList, "list", false, "List the token declarations found in each template")
	rootCmd.AddCommand(checkCmd)
}
