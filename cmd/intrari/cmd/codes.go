package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/intrari-furnizori/internal/codes"
)

var codesFlow string

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List classification codes",
	Long: `List the closed code sets accepted on intake documents: VAT transaction
types (TipTranzactie) and VAT regimes (TipTVA) per flow, payment modes
(ModPlata), currencies (Moneda) and document types (TipDocument).

Examples:
  intrari codes
  intrari codes --flow intrari
  intrari codes --format json`,
	RunE: runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)

	codesCmd.Flags().StringVar(&codesFlow, "flow", "", "Only VAT codes of this flow (intrari, invoice, iesiri)")
}

// CodeSet is one classification set in the listing
type CodeSet struct {
	Name    string      `json:"name"`
	Flow    string      `json:"flow,omitempty"`
	Entries []CodeEntry `json:"entries,omitempty"`
	Labels  []string    `json:"labels,omitempty"`
}

// CodeEntry is a numeric code with its name
type CodeEntry struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

func runCodes(cmd *cobra.Command, args []string) error {
	flows := codes.Flows()
	if codesFlow != "" {
		flow := codes.Flow(codesFlow)
		if codes.TipTranzactie(flow).Len() == 0 {
			return fmt.Errorf("unknown flow %q (accepted: intrari, invoice, iesiri)", codesFlow)
		}
		flows = []codes.Flow{flow}
	}

	var sets []CodeSet
	for _, flow := range flows {
		sets = append(sets,
			numericSet("TipTranzactie", flow, codes.TipTranzactie(flow)),
			numericSet("TipTVA", flow, codes.TipTVA(flow)),
		)
	}
	sets = append(sets,
		numericSet("ModPlata", "", codes.ModalitatiPlata()),
		CodeSet{Name: "Moneda", Labels: codes.MonedeAcceptate().Labels()},
		CodeSet{Name: "TipDocument", Labels: codes.TipuriDocument().Labels()},
	)

	if outputFormat == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(sets)
	}

	printCodeSets(cmd.OutOrStdout(), sets)
	return nil
}

func numericSet(name string, flow codes.Flow, set codes.Set) CodeSet {
	cs := CodeSet{Name: name, Flow: string(flow)}
	for _, e := range set.Entries() {
		cs.Entries = append(cs.Entries, CodeEntry{Code: int(e.Code), Name: e.Name})
	}
	return cs
}

func printCodeSets(out io.Writer, sets []CodeSet) {
	for i, s := range sets {
		if i > 0 {
			fmt.Fprintln(out)
		}
		title := s.Name
		if s.Flow != "" {
			title += " (" + s.Flow + ")"
		}
		fmt.Fprintln(out, title)

		w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		for _, e := range s.Entries {
			fmt.Fprintf(w, "  %d\t%s\n", e.Code, e.Name)
		}
		for _, l := range s.Labels {
			fmt.Fprintf(w, "  %s\n", l)
		}
		w.Flush()
	}
}
