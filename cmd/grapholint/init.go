package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/graphol-dev/grapholint/internal/config"
)

type initOptions struct {
	DiagramName   string
	Profile       string
	OutputPath    string
	NoInteractive bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter Graphol document",
	Long: `Generate a minimal Graphol document and a .grapholint.yaml config
so a new ontology project validates out of the box.`,
	Example: `  grapholint init
  grapholint init --name university --profile owl2ql`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("name", "", "Diagram name")
	initCmd.Flags().String("profile", "", "Default profile for the project config")
	initCmd.Flags().String("output", "ontology.yaml", "Output file path")
	initCmd.Flags().Bool("no-interactive", false, "Disable interactive prompts")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	opts := initOptions{}

	opts.DiagramName, _ = cmd.Flags().GetString("name")
	opts.Profile, _ = cmd.Flags().GetString("profile")
	opts.OutputPath, _ = cmd.Flags().GetString("output")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")

	if !opts.NoInteractive {
		if opts.DiagramName == "" {
			err := huh.NewInput().
				Title("Diagram name").
				Placeholder("untitled").
				Value(&opts.DiagramName).
				Run()
			if err != nil {
				return err
			}
		}

		if opts.Profile == "" {
			err := huh.NewSelect[string]().
				Title("Select default validation profile").
				Options(
					huh.NewOption("OWL 2 (full structural rules)", "owl2"),
					huh.NewOption("OWL 2 QL (query rewriting fragment)", "owl2ql"),
					huh.NewOption("OWL 2 RL (rule-based fragment)", "owl2rl"),
				).
				Value(&opts.Profile).
				Run()
			if err != nil {
				return err
			}
		}
	}

	if opts.DiagramName == "" {
		opts.DiagramName = "untitled"
	}
	if opts.Profile == "" {
		opts.Profile = "owl2"
	}

	if err := saveDocument(starterDocument(opts.DiagramName), opts.OutputPath); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	fmt.Printf("✓ Document saved to %s\n", opts.OutputPath)

	if err := saveProjectConfig(opts.Profile); err != nil {
		return fmt.Errorf("failed to save project config: %w", err)
	}
	fmt.Println("✓ Config saved to .grapholint.yaml")

	fmt.Printf("Run 'grapholint check %s' to validate.\n", opts.OutputPath)
	return nil
}

// starterDocument builds a small valid diagram so the first check passes.
func starterDocument(name string) *config.Document {
	return &config.Document{
		Graphol: "1.0.0",
		Diagrams: []config.DiagramDoc{
			{
				Name: name,
				Nodes: []config.NodeDoc{
					{ID: "thing", Type: "concept", IRI: "http://www.w3.org/2002/07/owl#Thing"},
					{ID: "entity", Type: "concept", Label: "Entity"},
				},
				Edges: []config.EdgeDoc{
					{ID: "e1", Type: "inclusion", Source: "entity", Target: "thing"},
				},
			},
		},
	}
}

func saveDocument(doc *config.Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func saveProjectConfig(profile string) error {
	data, err := yaml.Marshal(map[string]string{
		"profile": profile,
		"format":  "table",
	})
	if err != nil {
		return err
	}
	return os.WriteFile(".grapholint.yaml", data, 0o644)
}
