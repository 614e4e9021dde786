package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"venues-server/models"
	"venues-server/models/venue"
)

// ReadCatalogResponseFromJSON loads a CatalogResponse from JSON on disk.
func ReadCatalogResponseFromJSON(filePath string) (*models.CatalogResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.CatalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CatalogResponse: %w", err)
	}
	if resp.VenuesN == 0 {
		resp.VenuesN = len(resp.Venues)
	}
	return &resp, nil
}

// PrintVenuesTable writes one aligned row per venue.
func PrintVenuesTable(w io.Writer, venues []venue.Venue) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tRATING\tREVIEWS\tPRICE\tCAPACITY\tAVAILABILITY")
	for _, v := range venues {
		capacity := "-"
		if v.Capacity != nil {
			capacity = strconv.Itoa(*v.Capacity)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%d\t%s\t%s\t%s\n",
			v.ID, v.Name, v.Location, v.Rating, v.ReviewCount, v.PriceRange, capacity, v.Availability)
	}
	return tw.Flush()
}
