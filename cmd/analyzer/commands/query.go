package commands

import (
	"strconv"
	"strings"

	"go-property-analyzer/internal/model"
	"go-property-analyzer/internal/query"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search every field of every loaded dataset",
	Long: `Case-insensitive substring search across every field of every loaded
dataset. With no text, every record is returned.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := strings.Join(args, " ")
		rs := query.SearchAll(session.datasets, q)
		record(model.OpSearch, "", map[string]string{"q": q}, rs.TotalRecords(), nil)
		return renderResultSet(rs, limitFlag)
	},
}

var keywordColumnFlag string

var keywordCmd = &cobra.Command{
	Use:   "keyword <keyword>",
	Short: "Retrieve records whose text column contains a keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		column := keywordColumnFlag
		if column == "" {
			column = session.cfg.Classify.Column
		}
		rs := query.RetrieveAll(session.datasets, column, args[0])
		record(model.OpKeyword, "", map[string]string{"column": column, "keyword": args[0]}, rs.TotalRecords(), nil)
		return renderResultSet(rs, limitFlag)
	},
}

var (
	classifyColumnFlag   string
	classifyKeywordsFlag []string
	classifyCountFlag    bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Keep records matching any keyword of a group",
	Long: `Keep records whose text column contains at least one keyword of the
group. The default group and column come from the classify.* settings
(cleanliness: clean, tidy, hygiene, neat over comments).

Examples:
  analyzer classify --count --file reviews.csv
  analyzer classify --keywords quiet,peaceful --file reviews.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		column := classifyColumnFlag
		if column == "" {
			column = session.cfg.Classify.Column
		}
		keywords := classifyKeywordsFlag
		if len(keywords) == 0 {
			keywords = session.cfg.Classify.Keywords
		}

		rs := query.ClassifyAll(session.datasets, column, query.KeywordGroup(keywords))
		params := map[string]string{
			"column":    column,
			"keywords":  strings.Join(keywords, ","),
			"countOnly": strconv.FormatBool(classifyCountFlag),
		}
		record(model.OpClassify, "", params, rs.TotalRecords(), nil)

		if classifyCountFlag {
			return renderCounts(rs)
		}
		return renderResultSet(rs, limitFlag)
	},
}

func init() {
	keywordCmd.Flags().StringVar(&keywordColumnFlag, "column", "", "Text column to match (defaults to classify.column)")

	classifyCmd.Flags().StringVar(&classifyColumnFlag, "column", "", "Text column to match (defaults to classify.column)")
	classifyCmd.Flags().StringSliceVar(&classifyKeywordsFlag, "keywords", nil, "Keyword group (defaults to classify.keywords)")
	classifyCmd.Flags().BoolVar(&classifyCountFlag, "count", false, "Show per-dataset counts only")
}
