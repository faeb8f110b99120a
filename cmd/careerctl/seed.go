package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample recruiter data",
	Long: `Writes the sample jobs, applicants, email templates and interviews into every
collection that has never been stored. With --reset all four collections are
overwritten with the samples.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := appFrom(cmd.Context())
		if seedReset {
			if err := a.seeder.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(labelStyle.Render("Sample data restored"))
			return nil
		}

		seeded, err := a.seeder.SeedIfAbsent(cmd.Context())
		if err != nil {
			return err
		}
		if len(seeded) == 0 {
			fmt.Println(mutedStyle.Render("Nothing to seed, every collection already exists"))
			return nil
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Seeded:"), valueStyle.Render(strings.Join(seeded, ", ")))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "overwrite existing collections with the samples")
}
