package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"museum-web/internal/common/pagination"
	"museum-web/internal/domain/entity"
	"museum-web/internal/listview"
	authsvc "museum-web/internal/service/auth"
	newsUC "museum-web/internal/usecase/news"
	vetUC "museum-web/internal/usecase/veteran"
)

func newPingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the museum API answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cfg, err := opts.client(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			if err := c.Ping(ctx); err != nil {
				return fmt.Errorf("%s is unreachable: %w", cfg.API.BaseURL, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is up\n", cfg.API.BaseURL)
			return nil
		},
	}
}

// listFlags are the list pipeline inputs shared by the list commands.
type listFlags struct {
	query string
	sort  string
	desc  bool
	page  int
	limit int
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "case-insensitive search")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort key, see the admin list columns")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "records per page (default from the pagination config)")
}

// state returns the pipeline state and the page size. narrow applies the
// command's own filters; the page is set last since filters reset it.
// Out-of-range paging flags fall back to the configured defaults.
func (f *listFlags) state(cfg pagination.Config, narrow func(*listview.State)) (listview.State, int) {
	params := pagination.Params{Page: f.page, Limit: f.limit}.WithDefaults(cfg)
	s := listview.NewState()
	s.SetQuery(f.query)
	if f.sort != "" {
		dir := listview.Asc
		if f.desc {
			dir = listview.Desc
		}
		s.SetSort(f.sort, dir)
	}
	narrow(&s)
	s.SetPage(params.Page)
	return s, params.Limit
}

func newVeteransCmd(opts *options) *cobra.Command {
	var (
		lf   listFlags
		rank string
		unit string
	)
	cmd := &cobra.Command{
		Use:   "veterans",
		Short: "List veterans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cfg, err := opts.client(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			state, size := lf.state(cfg.PaginationSettings(), func(s *listview.State) {
				s.SetFilter(vetUC.FilterRank, rank)
				s.SetFilter(vetUC.FilterUnit, unit)
			})

			svc := &vetUC.Service{Repo: c}
			listing, err := svc.Browse(ctx, vetUC.AdminListConfig(), state, size)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), listing.Result)
			}
			return printVeterans(cmd.OutOrStdout(), listing.Result)
		},
	}
	lf.bind(cmd)
	cmd.Flags().StringVar(&rank, "rank", "", "exact rank")
	cmd.Flags().StringVar(&unit, "unit", "", "exact military unit")
	return cmd
}

func newNewsCmd(opts *options) *cobra.Command {
	var (
		lf       listFlags
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "news",
		Short: "List news",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cfg, err := opts.client(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			state, size := lf.state(cfg.PaginationSettings(), func(s *listview.State) {
				s.SetDateRange(from, to)
			})

			svc := &newsUC.Service{Repo: c}
			res, err := svc.Browse(ctx, newsUC.AdminListConfig(), state, size)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return printNews(cmd.OutOrStdout(), res)
		},
	}
	lf.bind(cmd)
	cmd.Flags().StringVar(&from, "from", "", "published on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "published on or before (YYYY-MM-DD)")
	return cmd
}

func newLoginCmd(opts *options) *cobra.Command {
	var (
		email     string
		showToken bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify administrator credentials",
		Long: `Exchanges an email and password for an access token.

The password is read from MUSEUM_PASSWORD, or from the first line of stdin
when the variable is unset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := os.Getenv("MUSEUM_PASSWORD")
			if password == "" {
				var err error
				if password, err = readLine(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			creds := authsvc.Credentials{Email: email, Password: password}
			if err := creds.Validate(); err != nil {
				return err
			}

			c, _, err := opts.client(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			token, err := c.Login(ctx, creds.Email, creds.Password)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "authenticated as %s\n", creds.Email)
			if showToken {
				fmt.Fprintln(out, token)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "administrator email")
	cmd.Flags().BoolVar(&showToken, "show-token", false, "print the access token")
	return cmd
}

func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if sc.Scan() {
		return strings.TrimRight(sc.Text(), "\r"), nil
	}
	return "", sc.Err()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printVeterans(w io.Writer, res listview.Result[*entity.Veteran]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRANK\tUNIT\tLIFE")
	for _, v := range res.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.FullName(), v.Rank, v.MilitaryUnit, v.LifeDates())
	}
	fmt.Fprintf(tw, "\nshown %d of %d (page %d/%d)\n", len(res.Items), res.Total, res.Page, res.TotalPages)
	return tw.Flush()
}

func printNews(w io.Writer, res listview.Result[*entity.News]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTITLE")
	for _, n := range res.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.PublishDate, n.Title)
	}
	fmt.Fprintf(tw, "\nshown %d of %d (page %d/%d)\n", len(res.Items), res.Total, res.Page, res.TotalPages)
	return tw.Flush()
}
