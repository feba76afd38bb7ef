package main

import (
	"fmt"
	"slices"

	"github.com/deppfellow/boardhub/internal/lib/email"
	"github.com/spf13/cobra"
)

func newPreviewEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview-email <template>",
		Short: "Render an email template with sample data to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := email.Template(args[0])

			data, ok := email.PreviewData[name]
			if !ok {
				known := make([]string, 0, len(email.PreviewData))
				for t := range email.PreviewData {
					known = append(known, string(t))
				}
				slices.Sort(known)
				return fmt.Errorf("unknown template %q, expected one of %v", name, known)
			}

			body, err := email.Render(name, data)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}
}
