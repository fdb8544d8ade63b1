package prompt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"futureyou/internal/agent"

	"github.com/spf13/cobra"
)

var (
	file   string
	asJSON bool
)

var Cmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render the agent definition for a request without creating it",
	Long: `Reads a provisioning request (the same JSON body POST /api/agent accepts)
and prints the display name and synthesized system prompt. Use "-" to read
from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if file != "-" {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening request: %w", err)
			}
			defer f.Close()
			in = f
		}
		return render(cmd.OutOrStdout(), in, asJSON)
	},
}

func init() {
	Cmd.Flags().StringVarP(&file, "file", "f", "-", "request JSON file")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "print the full agent definition as JSON")
}

func render(w io.Writer, r io.Reader, asJSON bool) error {
	var req agent.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}
	cfg, err := agent.NewService(nil).Prepare(&req)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}
	_, err = fmt.Fprintf(w, "name: %s\n\n%s\n", cfg.Name, cfg.ConversationConfig.Agent.Prompt.Prompt)
	return err
}
