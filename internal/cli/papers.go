package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/btechwala999/Ignitia-client/internal/api"
	"github.com/btechwala999/Ignitia-client/internal/app"
)

func papersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "papers",
		Short: "Work with question papers",
	}
	cmd.AddCommand(
		papersListCmd(),
		papersGetCmd(),
		papersCreateCmd(),
		papersDeleteCmd(),
		papersGenerateCmd(),
		papersSolveCmd(),
		papersExportURLCmd(),
	)
	return cmd
}

func papersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your question papers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				papers, err := a.Client.ListQuestionPapers(ctx)
				if err != nil {
					return fmt.Errorf("list failed: %s", api.Message(err))
				}
				for _, p := range papers {
					fmt.Printf("%s\t%s\t%s\t%d marks\t%d min\n",
						p.ID, p.Title, p.Subject, p.TotalMarks, p.Duration)
				}
				return nil
			})
		},
	}
}

func papersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one paper as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				paper, err := a.Client.GetQuestionPaper(ctx, args[0])
				if err != nil {
					return fmt.Errorf("fetch failed: %s", api.Message(err))
				}
				return printJSON(paper)
			})
		},
	}
}

func papersCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a paper from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var paper api.QuestionPaper
			if err := json.Unmarshal(b, &paper); err != nil {
				return fmt.Errorf("decode %s: %w", file, err)
			}

			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				created, err := a.Client.CreateQuestionPaper(ctx, paper)
				if err != nil {
					return fmt.Errorf("create failed: %s", api.Message(err))
				}
				fmt.Printf("Created %s (%s)\n", created.Title, created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "paper definition (JSON)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func papersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a paper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := a.Client.DeleteQuestionPaper(ctx, args[0]); err != nil {
					return fmt.Errorf("delete failed: %s", api.Message(err))
				}
				fmt.Println("Deleted.")
				return nil
			})
		},
	}
}

func papersGenerateCmd() *cobra.Command {
	var params api.GenerateParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate questions for a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				questions, err := a.Client.GenerateQuestions(ctx, params)
				if err != nil {
					return fmt.Errorf("generation failed: %s", api.Message(err))
				}
				return printJSON(questions)
			})
		},
	}

	cmd.Flags().StringVar(&params.Topic, "topic", "", "topic to generate questions for")
	cmd.Flags().IntVar(&params.Count, "count", 0, "number of questions")
	cmd.Flags().StringVar(&params.Difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().StringVar(&params.Type, "type", "", "mcq, short, long, diagram or code")
	cmd.Flags().StringVar(&params.Subject, "subject", "", "subject")
	cmd.Flags().StringVar(&params.BloomsLevel, "blooms-level", "", "Bloom's taxonomy level")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func papersSolveCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "solve <question>",
		Short: "Ask for a worked answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				solution, err := a.Client.SolveQuestion(ctx, args[0], subject)
				if err != nil {
					return fmt.Errorf("solve failed: %s", api.Message(err))
				}
				return printJSON(solution)
			})
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "subject")
	return cmd
}

func papersExportURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-url <id>",
		Short: "Print the PDF export URL for a paper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				fmt.Println(a.Client.ExportURL(args[0]))
				return nil
			})
		},
	}
}
