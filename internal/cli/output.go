package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"propdash/server/internal/format"
	"propdash/server/internal/models"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printStats(w io.Writer, s models.DashboardStats) error {
	_, err := fmt.Fprintf(w,
		"Properties:      %d\nAverage price:   %s\nMedian price:    %s\nOpportunities:   %d\nAvg days listed: %d\nTotal value:     %s\n",
		s.TotalProperties,
		format.FormatPrice(s.AvgPrice),
		format.FormatPrice(s.MedianPrice),
		s.Opportunities,
		s.AvgDaysOnMarket,
		format.FormatPrice(s.TotalValue),
	)
	return err
}

func printPropertyTable(w io.Writer, props []models.Property) error {
	if len(props) == 0 {
		_, err := fmt.Fprintln(w, "No properties found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tADDRESS\tPRICE\tBED\tBATH\tSQFT\tDAYS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, p := range props {
		address := p.FormattedAddress
		if address == "" {
			address = p.Street
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%g\t%.0f\t%d\n",
			p.ID, address, format.FormatPrice(p.Price), p.Beds, p.Baths(), p.Sqft, p.DaysOnMLS); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	return tw.Flush()
}

func printOwner(w io.Writer, o models.OwnerInfo) error {
	_, err := fmt.Fprintf(w,
		"Owner:       %s (%s)\nEmail:       %s\nPhone:       %s\nMailing:     %s\nAcquired:    %s for %s\nEquity:      %s\nPortfolio:   %d properties\nRisk:        %s\n",
		o.Name, o.Type,
		o.Email,
		o.Phone,
		o.MailingAddress,
		o.AcquisitionDate, format.FormatPrice(o.AcquisitionPrice),
		format.FormatPrice(o.EstimatedEquity),
		o.LinkedProperties,
		o.RiskScore,
	)
	return err
}

func printClusterTable(w io.Writer, clusters []models.Cluster) error {
	if len(clusters) == 0 {
		_, err := fmt.Fprintln(w, "No clusters.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CLUSTER\tLAT\tLNG\tCOUNT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, c := range clusters {
		if _, err := fmt.Fprintf(tw, "%s\t%.5f\t%.5f\t%d\n", c.ID, c.Lat, c.Lng, c.Count); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	return tw.Flush()
}
