package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottocalc/internal/display"
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/input"
)

// keys <key>...: replay key presses or button labels and print the
// display after each one.
func keysCmd() *cobra.Command {
	var quietFrames bool
	cmd := &cobra.Command{
		Use:   "keys <key>...",
		Short: "Replay key presses (7, plus, percent, enter, backspace, ×, ...)",
		Example: "  ottocalc keys 2 0 0 plus 5 0 percent\n" +
			"  ottocalc keys 1 0 divide 3 enter",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appCtx

			cmds := make([]domain.Command, 0, len(args))
			for _, name := range args {
				c, err := a.keys.ParseScript(name)
				if err != nil {
					b, ok := input.DefaultKeypad.Find(name)
					if !ok {
						return err
					}
					c = b.Command()
				}
				cmds = append(cmds, c)
			}

			var r domain.Renderer
			if !quietFrames {
				r = display.NewLineRenderer(cmd.OutOrStdout(), a.styles, "")
			}

			eng := a.newEngine()
			sess, err := eng.Open(ctx, r)
			if err != nil {
				return err
			}
			defer eng.Close(ctx, sess.ID)

			final := sess
			for _, c := range cmds {
				if final, err = eng.Dispatch(ctx, sess.ID, c); err != nil {
					return fmt.Errorf("key %s: %w", c.Type, err)
				}
			}
			if quietFrames {
				display.NewLineRenderer(cmd.OutOrStdout(), a.styles, "").Render(final.Display)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&quietFrames, "final", false, "print only the final display")
	return cmd
}
