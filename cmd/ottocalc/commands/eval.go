package commands

import (
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottocalc/internal/display"
)

// eval <expr>...: type each expression on a fresh keypad and print the
// display after "=".
func evalCmd() *cobra.Command {
	var showExpr bool
	cmd := &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate expressions as if typed on the keypad",
		Long: `Evaluate expressions as if typed on the keypad.

Each expression may use digits, ".", "+ - * /", "× ÷ −", parentheses,
"%" and spaces. Any other character, including the "c" and "=" keys,
is an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appCtx
			eng := a.newEngine()

			for _, text := range args {
				sess, err := eng.Open(ctx, nil)
				if err != nil {
					return err
				}
				final, err := typeText(ctx, eng, a.keys, a.log, sess.ID, text)
				if err != nil {
					return err
				}

				prefix := ""
				if showExpr || len(args) > 1 {
					prefix = text + " ="
				}
				display.NewLineRenderer(cmd.OutOrStdout(), a.styles, prefix).Render(final.Display)

				if err := eng.Close(ctx, sess.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showExpr, "show", false, "print the expression before its result")
	return cmd
}
