package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/trialforge/whereclause/internal/clause"
	"github.com/trialforge/whereclause/internal/core/db"
	"github.com/trialforge/whereclause/internal/library"
	"github.com/trialforge/whereclause/internal/types"
)

var (
	templateName        string
	templateDescription string
	templateTags        []string
	templateSearchText  string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the expression template library",
}

var templateSaveCmd = &cobra.Command{
	Use:   "save <expression.json>",
	Short: "Save a validated expression as a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateSave,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search templates by tags and text",
	Args:  cobra.NoArgs,
	RunE:  runTemplateSearch,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <template-id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDelete,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateSaveCmd, templateListCmd, templateSearchCmd, templateDeleteCmd)

	templateSaveCmd.Flags().StringVar(&templateName, "name", "", "template name (required)")
	templateSaveCmd.Flags().StringVar(&templateDescription, "description", "", "template description")
	templateSaveCmd.Flags().StringSliceVar(&templateTags, "tag", nil, "template tag (repeatable)")
	templateSaveCmd.MarkFlagRequired("name")

	templateSearchCmd.Flags().StringSliceVar(&templateTags, "tag", nil, "tag filter (repeatable)")
	templateSearchCmd.Flags().StringVar(&templateSearchText, "text", "", "substring match on name/description")
}

// openStore opens the library database from config and runs migrations.
func openStore() (*library.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	database, err := db.Open(cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	store, err := library.NewStore(database)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return store, func() { database.Close() }, nil
}

func runTemplateSave(cmd *cobra.Command, args []string) error {
	expr, err := readExpression(args[0])
	if err != nil {
		return err
	}

	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	template := &types.Template{
		ID:          types.NewTemplateID(),
		Name:        templateName,
		Description: templateDescription,
		Tags:        types.NormalizeTags(templateTags),
		CreatedAt:   time.Now().UTC(),
		Expression:  expr,
	}
	if err := store.Save(template); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved template %s\n", template.ID)
	return nil
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	templates, err := store.List()
	if err != nil {
		return err
	}
	printTemplates(cmd, templates)
	return nil
}

func runTemplateSearch(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	templates, err := store.Search(templateTags, templateSearchText)
	if err != nil {
		return err
	}
	printTemplates(cmd, templates)
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	id, err := types.ParseTemplateID(args[0])
	if err != nil {
		return fmt.Errorf("invalid template id: %w", err)
	}

	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	if err := store.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted template %s\n", id)
	return nil
}

func printTemplates(cmd *cobra.Command, templates []*types.Template) {
	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no templates")
		return
	}
	for _, t := range templates {
		summary, err := clause.DescribeTree(t.Expression)
		if err != nil {
			summary = "(unrenderable expression)"
		}
		line := fmt.Sprintf("%s  %s", t.ID, t.Name)
		if len(t.Tags) > 0 {
			line += "  [" + strings.Join(t.Tags, ", ") + "]"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n    %s\n", line, summary)
	}
}
