package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"bridgegen/internal/config"
	"bridgegen/internal/emit"
	"bridgegen/internal/pipeline"
)

// genCmd runs the full pipeline and writes the generated Dart file.
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the Dart proxy file",
	Long: `Runs the full generation pass: scans both native source trees, merges
the exposed classes into one model, and writes the generated Dart file
to the output path named in the project file.`,
	RunE: runGen,
}

// scanCmd reports what would be bridged without writing anything.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Report the bridged classes and members without generating",
	RunE:  runScan,
}

// dumpCmd pretty-prints the merged model for debugging.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the merged symbol model",
	RunE:  runDump,
}

// initCmd writes a starter project file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter bridgegen.yaml",
	RunE:  runInit,
}

func runGen(cmd *cobra.Command, args []string) error {
	result, project, err := runPipeline()
	if err != nil {
		return err
	}

	printWarnings(result)

	if err := emit.WriteFile(project.Output, result.Dart); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d proxy classes)\n", project.Output, len(result.Entities))

	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	result, _, err := runPipeline()
	if err != nil {
		return err
	}

	printWarnings(result)

	if len(result.Entities) == 0 {
		fmt.Println("no exposed declarations found")
		return nil
	}

	for _, e := range result.Entities {
		fmt.Printf("%s (%s)\n", e.Name, e.Origin)

		for _, c := range e.Callables {
			fmt.Printf("  %-12s %s -> %s\n", c.Kind, c.TargetID(e.Name), c.ReturnType)
		}
	}

	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	result, _, err := runPipeline()
	if err != nil {
		return err
	}

	spew.Dump(result.Entities)

	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(projectFile); err == nil {
		return fmt.Errorf("%s already exists", projectFile)
	}

	starter := &config.Project{
		Version:     "1",
		AndroidRoot: "android/app/src/main/kotlin",
		IOSRoot:     "ios/Runner",
		Output:      "lib/bridge.g.dart",
		Channel:     "bridgegen",
	}

	if err := config.WriteFile(starter, projectFile); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", projectFile)

	return nil
}

// runPipeline loads the project file and executes one generation pass.
func runPipeline() (*pipeline.Result, *config.Project, error) {
	project, err := config.LoadFile(projectFile)
	if err != nil {
		return nil, nil, err
	}

	if err := project.Validate(); err != nil {
		return nil, nil, err
	}

	result, err := pipeline.New(project, logger).Run()
	if err != nil {
		return nil, nil, err
	}

	return result, project, nil
}

func printWarnings(result *pipeline.Result) {
	for _, d := range result.Diagnostics.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", d.String())
	}
}
