package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zsiec/mediaformat/catalog"
)

func newCatalogCommand() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "catalog <file>...",
		Short: "Assemble a JSON track catalog from wire-encoded formats",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := decodeFiles(args)
			if err != nil {
				return err
			}
			doc, err := catalog.Build(namespace, formats)
			if err != nil {
				return fmt.Errorf("build catalog: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(doc))
			return nil
		},
	}
	cmd.Flags().StringVar(&namespace, "namespace", "mediaformat/default", "catalog track namespace")
	return cmd
}
