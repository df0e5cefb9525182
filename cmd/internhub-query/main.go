// Command internhub-query prints one page of discovery results from a fixtures file
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"internhub/internal/core/discovery"
	"internhub/internal/platform/config"
	perr "internhub/internal/platform/errors"
	"internhub/internal/services/api/internships/domain"
	"internhub/internal/services/api/internships/repo"
	"internhub/internal/services/api/internships/service"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "internhub-query:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg := config.New().Prefix("CORE_INTERNSHIPS_")
	fsx := flag.NewFlagSet("internhub-query", flag.ContinueOnError)
	var (
		fFixtures = fsx.String("fixtures", cfg.MayString("FIXTURES", "fixtures/internships.yaml"), "yaml fixtures file")
		fSearch   = fsx.String("q", "", "free text search over title, company and skills")
		fDomains  = fsx.String("domains", "", "comma separated domains")
		fModes    = fsx.String("modes", "", "comma separated location modes: remote, on-site, hybrid")
		fDuration = fsx.String("duration", "", "duration bucket: 1-3, 3-6, 6+")
		fMin      = fsx.Int("min", -1, "minimum stipend, -1 for the catalog minimum")
		fMax      = fsx.Int("max", -1, "maximum stipend, -1 for the catalog maximum")
		fSkills   = fsx.String("skills", "", "comma separated skills, all must match")
		fOrder    = fsx.String("order", "", "recent | stipend_desc | stipend_asc | title, empty keeps file order")
		fPage     = fsx.Int("page", 1, "page number, 1 based")
		fSize     = fsx.Int("size", cfg.MayInt("PAGE_SIZE", discovery.DefaultPageSize), "page size")
		fFormat   = fsx.String("format", "table", "output: table | json")
	)
	fsx.SetOutput(out)
	if err := fsx.Parse(args); err != nil {
		return err
	}
	if *fFormat != "table" && *fFormat != "json" {
		return perr.WithField(perr.InvalidArgf("unknown -format %q", *fFormat), "format")
	}

	ps, err := repo.LoadFixtures(*fFixtures)
	if err != nil {
		return err
	}

	in := domain.SearchInput{
		Spec: domain.SpecInput{
			Search:        *fSearch,
			Domains:       csv(*fDomains),
			LocationModes: csv(*fModes),
			Duration:      *fDuration,
			Skills:        csv(*fSkills),
		},
		Page:     fPage,
		PageSize: *fSize,
		Order:    *fOrder,
	}
	if *fMin >= 0 || *fMax >= 0 {
		in.Spec.Stipend = &domain.StipendInput{}
		if *fMin >= 0 {
			in.Spec.Stipend.Min = fMin
		}
		if *fMax >= 0 {
			in.Spec.Stipend.Max = fMax
		}
	}

	svc := service.New(nil, repo.NewFixtures(ps), service.WithPageSize(*fSize))
	res, err := svc.Search(ctx, in)
	if err != nil {
		return err
	}

	if *fFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Items      []discovery.Listing `json:"items"`
			Active     []discovery.Facet   `json:"active"`
			TotalCount int                 `json:"total_count"`
			TotalPages int                 `json:"total_pages"`
			Page       int                 `json:"page"`
			PageSize   int                 `json:"page_size"`
		}{res.Items, res.Active, res.Page.TotalCount, res.Page.TotalPages, res.Page.Page, res.Page.PageSize})
	}
	return table(out, res)
}

func table(out io.Writer, res domain.SearchResult) error {
	if res.Empty {
		_, err := fmt.Fprintln(out, "no internships match these filters")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tDOMAIN\tMODE\tSTIPEND\tDURATION\tSKILLS")
	for _, l := range res.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			l.ID, l.Title, l.Company, l.Domain, l.LocationMode, l.Stipend, l.Duration, strings.Join(l.Skills, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	p := res.Page
	_, err := fmt.Fprintf(out, "page %d of %d, %d internships\n", p.Page, p.TotalPages, p.TotalCount)
	return err
}

func csv(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
