// questions.go implements the "aula questions" command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aula-dev/aula/internal/qbank"
)

var questionsTopic int

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List your question bank",
	Long: `List the signed-in teacher's own questions, archived records
excluded. Requires a teacher session.`,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().IntVar(&questionsTopic, "topic", 0, "Filter by topic id (0 = any)")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	_, svcs, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	if !svcs.Session.Authenticated() {
		return fmt.Errorf("not signed in; run: aula login")
	}
	profile := svcs.Session.Profile()
	if profile == nil || profile.Teacher == nil {
		return fmt.Errorf("cli: question listing needs a teacher session")
	}

	ctx := context.Background()
	catalogs, err := svcs.QBank.Catalogs(ctx)
	if err != nil {
		return err
	}
	questions, err := svcs.QBank.Questions(ctx)
	if err != nil {
		return err
	}

	own := qbank.Filter(questions, catalogs.Topics, qbank.Criteria{
		TopicID: questionsTopic,
		OwnerID: profile.Teacher.ID,
	})
	if len(own) == 0 {
		fmt.Println("No questions.")
		return nil
	}

	topicNames := make(map[int]string, len(catalogs.Topics))
	for _, t := range catalogs.Topics {
		topicNames[t.ID] = t.Name
	}
	for _, q := range own {
		fmt.Printf("  %-4d [%s] %s\n", q.ID, topicNames[q.TopicID], q.Text)
	}
	fmt.Printf("\n%d questions\n", len(own))
	return nil
}
