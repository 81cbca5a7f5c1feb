package cmd

import (
	"fmt"

	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/resume"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addCatalogFlags registers the flags selecting the first page shown by cmd.
func addCatalogFlags(cmd *cobra.Command, resumable bool) {
	cmd.Flags().IntP("limit", "l", 0, fmt.Sprintf("Records per page (1-%d), defaults to %s", pagination.MaxLimit, key.PaginationDefaultLimit))
	cmd.Flags().IntP("offset", "o", 0, "Index of the first record to show")
	cmd.Flags().IntP("page", "p", 0, "Page to show, 1-based")
	cmd.MarkFlagsMutuallyExclusive("offset", "page")

	if resumable {
		cmd.Flags().BoolP("continue", "c", false, "Reopen the page and record viewed last time")
		cmd.Flags().StringP("record", "r", "", "Open the record with this id once the page is loaded")
		cmd.MarkFlagsMutuallyExclusive("continue", "record")
	}
}

// startingPoint resolves the catalog flags of cmd into the first page and
// the record to open on it, if any.
func startingPoint(cmd *cobra.Command) (params pagination.Params, record string, err error) {
	params = pagination.Params{Limit: viper.GetInt(key.PaginationDefaultLimit)}

	if f := cmd.Flags().Lookup("continue"); f != nil && lo.Must(cmd.Flags().GetBool("continue")) {
		snapshot, err := resume.Get()
		if err != nil {
			log.Warn("resume snapshot unreadable: ", err)
		}

		if s, ok := snapshot.Get(); ok {
			log.Infof("resuming at %q", s.Query)
			params, record = s.Params(), s.Record
		}
	}

	if cmd.Flags().Changed("limit") {
		params.Limit = lo.Must(cmd.Flags().GetInt("limit"))
	}

	if cmd.Flags().Changed("offset") {
		params.Offset = lo.Must(cmd.Flags().GetInt("offset"))
	}

	if cmd.Flags().Changed("page") {
		page := lo.Must(cmd.Flags().GetInt("page"))
		if page < 1 {
			return params, record, fmt.Errorf("invalid page %d: pages start at 1", page)
		}
		params = pagination.Params{Limit: params.Limit, Offset: (page - 1) * params.Limit}
	}

	if f := cmd.Flags().Lookup("record"); f != nil && f.Changed {
		record = f.Value.String()
	}

	if err := params.Validate(); err != nil {
		return params, record, err
	}

	return params, record, nil
}
