package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print the recruiter dashboard metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := appFrom(cmd.Context())
		m, err := a.metrics.GetDashboardMetrics(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Recruiter Dashboard"))

		fmt.Println(labelStyle.Render("Overview"))
		printField("Total jobs", m.TotalJobs)
		printField("Active jobs", m.ActiveJobs)
		printField("Total applicants", m.TotalApplicants)
		printField("New applicants", m.NewApplicants)
		printField("Interviews scheduled", m.InterviewsScheduled)
		printField("Offers extended", m.OffersExtended)
		printField("Conversion rate", m.ConversionRate)
		printField("Time to hire", m.TimeToHire)

		fmt.Printf("\n%s\n", labelStyle.Render("Applications by status"))
		for _, s := range m.ApplicationStatusData {
			printField(s.Status, s.Count)
		}

		fmt.Printf("\n%s\n", labelStyle.Render("Job views"))
		for _, d := range m.JobViewsData {
			printField(d.Date, d.Views)
		}

		if len(m.TopJobListings) > 0 {
			fmt.Printf("\n%s\n", labelStyle.Render("Top job listings"))
			for _, j := range m.TopJobListings {
				fmt.Printf("  %s %s\n",
					valueStyle.Render(j.Title+" at "+j.Company),
					mutedStyle.Render(fmt.Sprintf("(%d applicants, %d views)", j.Applicants, j.Views)))
			}
		}
		return nil
	},
}

func printField(label string, value any) {
	fmt.Printf("  %s %s\n", label+":", valueStyle.Render(fmt.Sprint(value)))
}
