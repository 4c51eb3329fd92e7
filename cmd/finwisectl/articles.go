package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	articlesCmd := &cobra.Command{Use: "articles", Short: "Article operations"}

	// list
	var category, authorID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := apiFlag + "/api/articles"
			switch {
			case authorID != "":
				url += "?authorId=" + authorID
			case category != "":
				url += "?category=" + category
			}
			data, err := doGet(url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	listCmd.Flags().StringVarP(&authorID, "author", "u", "", "Filter by author ID")
	articlesCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get ARTICLE_ID",
		Short: "Get an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/articles/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	articlesCmd.AddCommand(getCmd)

	// publish
	var author, title, cat, summary, content, tags string
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish an article",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"authorId": author,
				"title":    title,
				"category": cat,
				"summary":  summary,
				"content":  content,
				"tags":     tags,
			}
			data, err := doPostJSON(apiFlag+"/api/articles", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	publishCmd.Flags().StringVarP(&author, "author", "u", "", "Author ID (required)")
	publishCmd.Flags().StringVarP(&title, "title", "t", "", "Title (required)")
	publishCmd.Flags().StringVarP(&cat, "category", "c", "", "Category (required)")
	publishCmd.Flags().StringVarP(&summary, "summary", "s", "", "Summary (required)")
	publishCmd.Flags().StringVarP(&content, "content", "b", "", "Body content (required)")
	publishCmd.Flags().StringVarP(&tags, "tags", "g", "", "Comma-separated tags")
	_ = publishCmd.MarkFlagRequired("author")
	_ = publishCmd.MarkFlagRequired("title")
	_ = publishCmd.MarkFlagRequired("category")
	_ = publishCmd.MarkFlagRequired("summary")
	_ = publishCmd.MarkFlagRequired("content")
	articlesCmd.AddCommand(publishCmd)

	rootCmd.AddCommand(articlesCmd)
}
