package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loansight/adapters/corpus"
	"loansight/app"
	"loansight/internal/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loansight",
		Short: "Loansight CLI for loan approval prediction and synthetic corpus generation",
	}

	rootCmd.AddCommand(
		newPredictCmd(),
		newGenerateCmd(),
		newAccuracyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPredictCmd() *cobra.Command {
	var corpusFile string
	var score int
	var income float64
	var loan float64
	var dti float64

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score an applicant and explain the drivers",
		Long: `Train on a labeled corpus, score one applicant, and print the
counterfactual recommendations.

Example: loansight predict --corpus train.csv --score 720 --income 85000 --loan 170000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, err := bootstrap(corpusFile, 42)
			if err != nil {
				return err
			}
			result, err := advisor.Analyze(app.PredictionRequest{
				CreditScore:       score,
				AnnualIncome:      income,
				LoanAmount:        loan,
				DebtToIncomeRatio: dti,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Decision: %s (probability %.3f, %s tier)\n",
				result.Assessment.Decision, result.Assessment.Probability, result.Assessment.Tier)
			for _, rec := range result.Importance.Recommendations {
				fmt.Printf("  - %s\n", rec)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusFile, "corpus", "", "Training corpus file (csv or xlsx)")
	cmd.Flags().IntVar(&score, "score", 0, "Credit score")
	cmd.Flags().Float64Var(&income, "income", 0, "Annual income")
	cmd.Flags().Float64Var(&loan, "loan", 0, "Loan amount")
	cmd.Flags().Float64Var(&dti, "dti", 0, "Debt-to-income ratio (default 0.36)")
	cmd.MarkFlagRequired("corpus")

	return cmd
}

func newGenerateCmd() *cobra.Command {
	var corpusFile string
	var outFile string
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic labeled corpus from training statistics",
		Long: `Build feature statistics over a labeled corpus and export synthetic
profiles drawn from them.

Example: loansight generate --corpus train.csv --out synthetic.csv --count 500 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, err := bootstrap(corpusFile, seed)
			if err != nil {
				return err
			}
			profiles, err := advisor.GenerateCorpus(count)
			if err != nil {
				return err
			}
			if err := corpus.NewWriter(outFile).Write(profiles); err != nil {
				return err
			}

			approved := 0
			for _, p := range profiles {
				approved += p.LoanApproved
			}
			fmt.Printf("Wrote %d profiles to %s (%.1f%% approved)\n",
				len(profiles), outFile, 100*float64(approved)/float64(len(profiles)))
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusFile, "corpus", "", "Training corpus file (csv or xlsx)")
	cmd.Flags().StringVar(&outFile, "out", "synthetic.csv", "Output file (csv or xlsx)")
	cmd.Flags().IntVar(&count, "count", 100, "Number of profiles to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Generator seed for deterministic output")
	cmd.MarkFlagRequired("corpus")

	return cmd
}

func newAccuracyCmd() *cobra.Command {
	var corpusFile string

	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Report training accuracy and the decision mix over the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, err := bootstrap(corpusFile, 42)
			if err != nil {
				return err
			}
			fmt.Printf("Training accuracy: %.3f\n", advisor.Model().TrainingAccuracy())

			approved := 0
			samples := advisor.Corpus()
			for i := range samples {
				if report.Decision(advisor.Model().Predict(&samples[i].Profile)) == "APPROVED" {
					approved++
				}
			}
			if len(samples) > 0 {
				fmt.Printf("Approval rate over corpus: %.1f%%\n", 100*float64(approved)/float64(len(samples)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusFile, "corpus", "", "Training corpus file (csv or xlsx)")
	cmd.MarkFlagRequired("corpus")

	return cmd
}

func bootstrap(corpusFile string, seed int64) (*app.AdvisorService, error) {
	trainingCorpus, err := corpus.NewReader(corpusFile).Load()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	advisor, err := app.NewAdvisorService(trainingCorpus, seed)
	if err != nil {
		return nil, fmt.Errorf("building advisor: %w", err)
	}
	return advisor, nil
}
