// Package inline prints catalog pages and records for scripts.
package inline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anisan-cli/animedex/fetch"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/open"
	"github.com/anisan-cli/animedex/pagination"
)

// List prints one page of src. With a picker only the picked record is printed.
func List(src fetch.Source, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	controller := fetch.NewList(src)
	defer controller.Close()

	state := controller.Load(options.Params)
	if state.IsFailed() {
		return state.Err()
	}

	page := state.Data().MustGet()
	records := filterRecords(page.Records, options.Filter)
	log.Infof("page %d: %d of %d records kept", options.Params.CurrentPage(), len(records), len(page.Records))

	if picker, ok := options.Picker.Get(); ok {
		picked := picker(records)
		if picked == nil {
			records = nil
		} else {
			records = []kitsu.Record{*picked}
		}
	}

	if options.Json {
		output := &Output{
			Page:       options.Params.CurrentPage(),
			Limit:      options.Params.Limit,
			Offset:     options.Params.Offset,
			Total:      state.Total(),
			TotalPages: pagination.TotalPages(state.Total(), options.Params.Limit),
			Filter:     options.Filter,
			Result:     make([]*Anime, len(records)),
		}
		for i := range records {
			output.Result[i] = newAnime(&records[i])
		}
		return writeJson(options.Out, output)
	}

	if options.Picker.IsPresent() && len(records) == 1 {
		return writeRecord(options.Out, &records[0])
	}

	for i := range records {
		fmt.Fprintf(options.Out, "%s\t%s\n", records[i].ID, records[i].Title())
	}

	return nil
}

// Show prints the record with id.
func Show(src fetch.Source, id string, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	controller := fetch.NewDetail(src)
	defer controller.Close()

	state := controller.Load(id)
	if state.IsFailed() {
		return state.Err()
	}

	record := state.Data().MustGet()
	if options.Json {
		return writeJson(options.Out, newAnime(record))
	}

	return writeRecord(options.Out, record)
}

func writeRecord(out io.Writer, r *kitsu.Record) error {
	var sb strings.Builder

	sb.WriteString(r.Title())
	sb.WriteString("\n")
	for _, f := range r.Fields() {
		fmt.Fprintf(&sb, "%s: %s\n", f.Name, f.Value)
	}
	fmt.Fprintf(&sb, "URL: %s\n", open.RecordURL(r.ID))
	if r.Attributes.Synopsis != "" {
		sb.WriteString("\n")
		sb.WriteString(r.Attributes.Synopsis)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
