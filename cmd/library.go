package cmd

import (
	"fmt"

	"github.com/abhishekvash/bare-minimum-theory/chord"
	"github.com/abhishekvash/bare-minimum-theory/file"
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manages saved progressions",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists saved progressions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		list, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d slots\n", p.ID, p.Name, p.NumChords)
		}
		return nil
	},
}

var libraryImportCmd = &cobra.Command{
	Use:   "import <progression-file>",
	Short: "Saves a progression file into the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProgression(args[0], 0)
		if err != nil {
			return err
		}
		if _, err := chord.ProgressionNotes(p); err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		saved, err := store.Save(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %v as %v\n", saved.Name, saved.ID)
		return nil
	},
}

var libraryExportCmd = &cobra.Command{
	Use:   "get <id> <progression-file>",
	Short: "Writes a saved progression to a YAML or JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		p, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return file.SaveProgression(args[1], p)
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deletes a saved progression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		return store.Delete(cmd.Context(), args[0])
	},
}

func init() {
	libraryCmd.AddCommand(libraryListCmd, libraryImportCmd, libraryExportCmd, libraryDeleteCmd)
	rootCmd.AddCommand(libraryCmd)
}
