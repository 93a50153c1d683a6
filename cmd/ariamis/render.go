package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Deskbot/Ariamis/internal/demo"
	"github.com/Deskbot/Ariamis/pkg/render"
)

func renderCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo page to stdout",
		Long:  `Build the demo tree and write its HTML to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := demo.NewPage()
			r := render.New(render.Config{Pretty: pretty})
			return r.ToWriter(os.Stdout, page.Root())
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print with indentation")

	return cmd
}
