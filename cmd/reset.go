package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all mastery records",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		st, _, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.MasteryStore().Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Mastery records cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
