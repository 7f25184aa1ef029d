package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/placement"
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Run the onboarding survey placement",
	Long: `Convert survey answers into an initial placement.

Answers are passed as repeated --answer flags:
  pourly place --answer experience=none --answer track_pref=zero-proof --answer time=short
  pourly place --answer frequency=4 --answer spirit_interest=gin,whiskey

Numeric values are scale answers, comma-separated values are multi-select.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, _ := cmd.Flags().GetStringArray("answer")
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		engine := placement.NewEngine(cfg.Placement)
		result := engine.Place(answers)

		st, _, emitter, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := emitter.PlacementDone(ctx, result); err != nil {
			return fmt.Errorf("record placement: %w", err)
		}

		printPlacement(result)
		return nil
	},
}

func init() {
	placeCmd.Flags().StringArray("answer", nil, "Survey answer as question=value (repeatable)")
}

// parseAnswers converts question=value pairs into typed survey answers.
// A numeric value is a scale answer, a comma-separated value is multi-select,
// anything else is single-select. Unknown questions are kept; the engine
// treats them as no-ops.
func parseAnswers(raw []string) (placement.SurveyAnswers, error) {
	var answers placement.SurveyAnswers
	for _, entry := range raw {
		q, v, ok := strings.Cut(entry, "=")
		if !ok || q == "" {
			return nil, fmt.Errorf("invalid answer %q, want question=value", entry)
		}

		var a placement.Answer
		if n, err := strconv.Atoi(v); err == nil {
			a = placement.Scale{Value: n}
		} else if strings.Contains(v, ",") {
			var options []placement.OptionID
			for _, opt := range strings.Split(v, ",") {
				options = append(options, placement.OptionID(strings.TrimSpace(opt)))
			}
			a = placement.MultiSelect{Options: options}
		} else {
			a = placement.SingleSelect{Option: placement.OptionID(v)}
		}

		answers = append(answers, placement.QuestionAnswer{
			Question: placement.QuestionID(q),
			Answer:   a,
		})
	}
	return answers, nil
}

func printPlacement(result placement.Result) {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite, color.Bold)

	heading.Println("Placement")
	fmt.Printf("  %s %s\n", label.Sprint("Level:"), result.Level)
	fmt.Printf("  %s %s\n", label.Sprint("Track:"), catalog.TrackDisplayName(result.Track))
	if len(result.Spirits) > 0 {
		names := make([]string, len(result.Spirits))
		for i, s := range result.Spirits {
			names[i] = string(s)
		}
		fmt.Printf("  %s %s\n", label.Sprint("Spirits:"), strings.Join(names, ", "))
	}
	fmt.Printf("  %s %d min\n", label.Sprint("Session:"), result.SessionMinutes)
	fmt.Printf("  %s %s\n", label.Sprint("Start module:"), result.StartModuleID)
	fmt.Println()
	fmt.Println(result.Interlude)
}
