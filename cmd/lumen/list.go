package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/lumen/internal/catalog"
	"github.com/alexisbeaulieu97/lumen/internal/gallery"
)

const listTitleWidth = 32

type listOptions struct {
	category   string
	query      string
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items matching a category and search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", string(catalog.All), "Only list items in this category")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Only list items whose title contains this text")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := newAppContext(cmd, rootFlags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	c, err := app.loadCatalog("list")
	if err != nil {
		return err
	}

	category := catalog.Category(strings.ToLower(strings.TrimSpace(opts.category)))
	if !c.KnownCategory(category) {
		return newCommandError("list", fmt.Sprintf("filtering by category %q", opts.category),
			fmt.Errorf("unknown category"),
			fmt.Sprintf("Use one of: %s.", strings.Join(categoryNames(c), ", ")))
	}

	session := gallery.NewSession(c, gallery.WithLogger(app.log))
	session.SetCategory(category)
	session.SetQuery(opts.query)
	visible := session.Visible()

	if opts.jsonOutput {
		return renderListJSON(cmd, c, session.Filter(), visible)
	}

	if visible.Len() == 0 {
		return renderEmptyList(cmd)
	}

	return renderListTable(cmd, visible)
}

func categoryNames(c *catalog.Catalog) []string {
	names := []string{string(catalog.All)}
	for _, cat := range c.Categories() {
		names = append(names, cat.String())
	}
	return names
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No items match.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nTry a different --category or a shorter --query.")
	return nil
}

func renderListTable(cmd *cobra.Command, visible gallery.VisibleSet) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "#\tID\tTITLE\tCATEGORY\tIMAGE")

	tail := "..."
	if supportsUnicode(cmd.OutOrStdout()) {
		tail = "…"
	}

	for i, item := range visible.Items() {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			item.ID,
			runewidth.Truncate(item.Title, listTitleWidth, tail),
			item.Category,
			item.ImageRef,
		)
	}

	return writer.Flush()
}

type listJSONItem struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Caption  string `json:"caption,omitempty"`
}

type listJSONPayload struct {
	Version  string         `json:"version"`
	Catalog  string         `json:"catalog"`
	Category string         `json:"category"`
	Query    string         `json:"query"`
	Total    int            `json:"total"`
	Count    int            `json:"count"`
	Items    []listJSONItem `json:"items"`
}

func renderListJSON(cmd *cobra.Command, c *catalog.Catalog, filter gallery.FilterState, visible gallery.VisibleSet) error {
	payload := listJSONPayload{
		Version:  "1.0",
		Catalog:  c.Name(),
		Category: filter.ActiveCategory.String(),
		Query:    filter.Query,
		Total:    c.Len(),
		Count:    visible.Len(),
		Items:    make([]listJSONItem, 0, visible.Len()),
	}

	for i, item := range visible.Items() {
		payload.Items = append(payload.Items, listJSONItem{
			Position: i + 1,
			ID:       item.ID,
			Title:    item.Title,
			Category: item.Category.String(),
			Image:    item.ImageRef,
			Caption:  item.Caption,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
