package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"venues-server/api"
	"venues-server/api/catalog"
	"venues-server/config"
	"venues-server/models"
	"venues-server/models/venue"
	"venues-server/query"
	"venues-server/util"
)

// queryFlags are the filter flags shared by the query and chart commands.
type queryFlags struct {
	search     string
	location   string
	sports     []string
	priceRange string
	sortBy     string
	catalog    string
}

func (f *queryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "query", "q", "", "search venue names and locations")
	cmd.Flags().StringVar(&f.location, "location", "", "filter by location")
	cmd.Flags().StringSliceVar(&f.sports, "sports", nil, "comma separated sports, any may match")
	cmd.Flags().StringVar(&f.priceRange, "price-range", "", "one of: "+joinPriceRanges())
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", "one of: "+joinSortKeys())
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "catalog JSON file (overrides the configured source)")
}

// spec validates the flags the same way the listing endpoint validates its
// query args.
func (f *queryFlags) spec() (models.FilterSpec, error) {
	vals := url.Values{}
	vals.Set(models.SEARCH_QUERY_ARG, f.search)
	vals.Set(models.LOCATION_ARG, f.location)
	for _, s := range f.sports {
		vals.Add(models.SPORTS_ARG, s)
	}
	vals.Set(models.PRICE_RANGE_ARG, f.priceRange)
	vals.Set(models.SORT_BY_ARG, f.sortBy)

	params, err := models.ParseVenueFilterParams(vals, models.DefaultPageLimit)
	if err != nil {
		return models.FilterSpec{}, err
	}
	return params.Spec, nil
}

// loadCatalog reads the catalog from the flag file or the configured source
// and drops invalid records.
func (f *queryFlags) loadCatalog(configPath string) ([]venue.Venue, error) {
	var source catalog.CatalogAPI
	if f.catalog != "" {
		source = catalog.NewCatalogApiClientMock(f.catalog)
	} else {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if cfg.Catalog.Source == config.CATALOG_SOURCE_API {
			source = catalog.NewCatalogApiClient(
				api.NewHTTPClientWithTimeout(cfg.Catalog.APIURL, time.Duration(cfg.Catalog.APITimeout)*time.Second))
		} else {
			source = catalog.NewCatalogApiClientMock(cfg.Catalog.File)
		}
	}

	resp, err := source.GetVenues()
	if err != nil {
		return nil, err
	}
	clean, rejected := venue.Sanitize(resp.Venues)
	for _, r := range rejected {
		log.Printf("[query] Rejected venue: %v", r)
	}
	return clean, nil
}

func (f *queryFlags) run(configPath string) ([]venue.Venue, models.FilterSpec, error) {
	spec, err := f.spec()
	if err != nil {
		return nil, spec, err
	}
	venues, err := f.loadCatalog(configPath)
	if err != nil {
		return nil, spec, err
	}
	return query.QueryVenues(venues, spec), spec, nil
}

func newQueryCmd(configPath *string) *cobra.Command {
	var (
		flags  queryFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter and sort the catalog from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, spec, err := flags.run(*configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			if len(result) == 0 {
				fmt.Fprintln(out, "No venues found matching your criteria.")
				return nil
			}
			fmt.Fprintf(out, "%d venues found (sorted by %s)\n", len(result), spec.SortKey)
			return util.PrintVenuesTable(out, result)
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func joinPriceRanges() string {
	out := make([]string, 0, len(models.PriceRanges))
	for _, p := range models.PriceRanges {
		out = append(out, string(p))
	}
	return strings.Join(out, ", ")
}

func joinSortKeys() string {
	out := make([]string, 0, len(models.SortKeys))
	for _, k := range models.SortKeys {
		out = append(out, string(k))
	}
	return strings.Join(out, ", ")
}
