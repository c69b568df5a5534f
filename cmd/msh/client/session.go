package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/msh-chargen/internal/handlers/generator/v1alpha1"
)

var createScoring string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Start a generation session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields := map[string]interface{}{}
		if createScoring != "" {
			fields["scoring_mode"] = createScoring
		}
		resp, err := call(v1alpha1.MethodCreateSession, fields)
		if err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a session with its phase and open actions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodGetSession, map[string]interface{}{"session_id": sessionID})
		if err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the character sheet of a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodExport, map[string]interface{}{"session_id": sessionID})
		if err != nil {
			return err
		}
		cmd.Print(resp.GetFields()["text"].GetStringValue())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Discard a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := call(v1alpha1.MethodDeleteSession, map[string]interface{}{"session_id": sessionID}); err != nil {
			return err
		}
		cmd.Printf("Deleted session %s\n", sessionID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createScoring, "scoring", "", "Scoring mode: minimum or standard")
	requireSession(getCmd)
	requireSession(exportCmd)
	requireSession(deleteCmd)
}
