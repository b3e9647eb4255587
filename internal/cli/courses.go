// courses.go implements the "aula courses" command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List courses and enrollment status",
	Long: `List the courses visible to the signed-in student, with own
enrollments marked. Requires a student session.`,
	RunE: runCourses,
}

func runCourses(cmd *cobra.Command, args []string) error {
	_, svcs, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	if !svcs.Session.Authenticated() {
		return fmt.Errorf("not signed in; run: aula login")
	}

	ctx := context.Background()
	if err := svcs.Session.VerifyStudent(ctx); err != nil {
		return fmt.Errorf("cli: course listing needs a student session: %w", err)
	}

	courses, err := svcs.Students.Courses(ctx)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Println("No courses available.")
		return nil
	}

	for _, c := range courses {
		mark := " "
		if c.Enrolled {
			mark = "*"
		}
		fmt.Printf("  %s %-4d %-30s %s\n", mark, c.ID, c.Name, c.Description)
	}
	fmt.Println()
	fmt.Println("* = enrolled")
	return nil
}
