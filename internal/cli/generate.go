package cli

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"method-quiz-service/internal/app"
	"method-quiz-service/internal/config"
	"method-quiz-service/internal/domain"
	"method-quiz-service/internal/infra/memory"
)

// NewGenerateCmd prints a freshly generated quiz as JSON without starting the server.
func NewGenerateCmd(configPath *string) *cobra.Command {
	var (
		language   string
		categories string
		quizType   string
		count      int
		seconds    int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a quiz from the built-in content tables and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			quiz := quizDefaults(cfg)
			quiz.QuizType = domain.QuizType(quizType)
			if language != "" {
				quiz.Language = domain.Language(strings.ToLower(language))
			}
			if count > 0 {
				quiz.QuestionCount = count
			}
			if seconds > 0 {
				quiz.TimePerQuestion = seconds
			}
			for _, c := range strings.Split(categories, ",") {
				if c = strings.TrimSpace(c); c != "" {
					quiz.Categories = append(quiz.Categories, c)
				}
			}
			if err := quiz.Validate(); err != nil {
				return err
			}

			repo := memory.NewContentRepository(memory.NewStaticContentLoader(), time.Minute)
			questions, err := app.NewGenerator(repo).Generate(cmd.Context(), quiz)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(questions)
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "javascript, typescript or python")
	cmd.Flags().StringVar(&categories, "categories", "", "comma-separated category filter")
	cmd.Flags().StringVar(&quizType, "type", string(domain.QuizTypeMethods), "methods or problems")
	cmd.Flags().IntVar(&count, "count", 0, "number of questions (5, 10 or 15)")
	cmd.Flags().IntVar(&seconds, "time", 0, "seconds per question (10, 15, 20 or 30)")
	return cmd
}
