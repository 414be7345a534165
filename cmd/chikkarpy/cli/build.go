package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/WorksApplications/chikkarpy/dictionarylib"
)

func newBuildCmd() *cobra.Command {
	var (
		input       string
		output      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a system dictionary from a CSV source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(input, output, description)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV path (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "synonym.dic", "output dictionary path")
	cmd.Flags().StringVarP(&description, "description", "d", "", "header description")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runBuild(input, output, description string) error {
	src, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	defer dst.Close()

	header := dictionarylib.Header{
		Version:     dictionarylib.SystemDictVersion1,
		CreateTime:  time.Now().Unix(),
		Description: description,
	}
	headerBytes, err := header.Bytes()
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if _, err := dst.Write(headerBytes); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	builder := dictionarylib.NewBuilder()
	if err := builder.Build(src, dst); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}
