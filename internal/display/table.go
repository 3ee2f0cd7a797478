package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"pricecomp/internal"
	"pricecomp/internal/pipeline"
)

// Console renders candidate and result tables and reads selections. The
// core only ever sees the chosen product or nil; a skip and an empty
// candidate list are indistinguishable downstream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// PromptItem asks for the next query. The second return is false when
// the user is done (typed "done", or stdin closed).
func (c *Console) PromptItem() (string, bool) {
	fmt.Fprint(c.out, "\nEnter item to compare (or 'done' to finish): ")
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	item := strings.TrimSpace(line)
	if strings.EqualFold(item, "done") {
		return "", false
	}
	return item, true
}

// SelectCandidate shows the ranked candidates for one store and returns
// the chosen product, or nil on skip / no candidates.
func (c *Console) SelectCandidate(store internal.Store, query string, candidates []internal.MatchCandidate) *internal.Product {
	if len(candidates) == 0 {
		fmt.Fprintf(c.out, "No matches found for %q in %s\n", query, store.FullName())
		return nil
	}

	fmt.Fprintf(c.out, "\n%s matches for %q:\n", store.FullName(), query)
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"#", "Product", "Price", "Score", "SKU"})
	table.SetAutoWrapText(false)
	for i, candidate := range candidates {
		sku := candidate.Product.SKU
		if sku == "" {
			sku = "N/A"
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			candidate.Product.DisplayName(),
			candidate.Product.DisplayPrice(),
			strconv.Itoa(candidate.Score),
			sku,
		})
	}
	table.Render()

	for {
		fmt.Fprintf(c.out, "Select %s product (1-%d, or 's' to skip): ", store.FullName(), len(candidates))
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		choice := strings.TrimSpace(line)
		if choice == "" || strings.EqualFold(choice, "s") {
			return nil
		}
		idx, convErr := strconv.Atoi(choice)
		if convErr == nil && idx >= 1 && idx <= len(candidates) {
			product := candidates[idx-1].Product
			return &product
		}
		fmt.Fprintln(c.out, "Invalid selection.")
		if err != nil {
			return nil
		}
	}
}

// PrintResult renders the final side-by-side table and the summary line.
func (c *Console) PrintResult(result internal.ComparisonResult) {
	fmt.Fprintln(c.out, "\nPrice Comparison Results")
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Item", "Trader Joe's", "Whole Foods", "Savings"})
	table.SetAutoWrapText(false)

	for _, item := range result.Items {
		tjInfo := "Not found"
		if item.TraderJoes != nil {
			tjInfo = item.TraderJoes.DisplayName() + " - " + item.TraderJoes.DisplayPrice()
		}
		wfInfo := "Not found"
		if item.WholeFoods != nil {
			wfInfo = item.WholeFoods.DisplayName() + " - " + item.WholeFoods.DisplayPrice()
		}
		savings := "N/A"
		if amount, cheaper, ok := pipeline.ItemSavings(item); ok {
			savings = fmt.Sprintf("$%.2f (%s)", amount, cheaper)
		}
		table.Append([]string{item.Label(), tjInfo, wfInfo, savings})
	}

	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("$%.2f", result.TraderJoesTotal),
		fmt.Sprintf("$%.2f", result.WholeFoodsTotal),
		fmt.Sprintf("$%.2f (%s)", result.Savings, result.CheaperStore),
	})
	table.Render()

	fmt.Fprintf(c.out, "\n%s is cheaper by $%.2f\n", result.CheaperStore.FullName(), result.Savings)
}
