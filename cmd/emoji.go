package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/parley/internal/config"
	"github.com/zjrosen/parley/internal/customemoji"
	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/presentation"
)

var (
	emojiJSON bool
	emojiTone string
)

var emojiCmd = &cobra.Command{
	Use:   "emoji",
	Short: "Inspect the emoji catalog",
}

var emojiSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the emoji catalog",
	Long: `Search the emoji catalog the way the picker does: colons are stripped,
matching is case-insensitive and custom emoji packs are included.

Examples:
  parley emoji search smile
  parley emoji search :thumbsup: --tone 1f3fd
  parley emoji search party --json | jq '.[].id'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		tone := emoji.ParseSkinTone(emojiTone)
		rows := emoji.Materialize(c, emoji.NormalizeFilter(strings.Join(args, " ")), tone, cfg.Emoji.RowWidth)
		return presentation.NewFormatter(cmd.OutOrStdout()).JSON(emojiJSON).FormatEmojis(presentation.FromRows(rows))
	},
}

var emojiCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print each category's header row and emoji count",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		rows := emoji.Materialize(c, "", emoji.ParseSkinTone(emojiTone), cfg.Emoji.RowWidth)
		idx := emoji.NewOffsetIndex(rows)
		return presentation.NewFormatter(cmd.OutOrStdout()).JSON(emojiJSON).FormatCategories(presentation.FromOffsetIndex(idx))
	},
}

func init() {
	emojiCmd.PersistentFlags().BoolVar(&emojiJSON, "json", false, "print JSON")
	emojiCmd.PersistentFlags().StringVar(&emojiTone, "tone", "", "skin tone (1f3fb..1f3ff)")
	emojiCmd.AddCommand(emojiSearchCmd, emojiCategoriesCmd)
	rootCmd.AddCommand(emojiCmd)
}

// loadCatalog builds the catalog from the bundled data plus custom packs.
func loadCatalog(ctx context.Context) (emoji.Catalog, error) {
	src, err := emoji.DefaultSource()
	if err != nil {
		return emoji.Catalog{}, fmt.Errorf("loading emoji data: %w", err)
	}
	if cfg.Emoji.CustomEnabled {
		lib := customemoji.NewLibrary(config.ExpandPath(cfg.Emoji.CustomDir), nil)
		if err := lib.Reload(ctx); err != nil {
			return emoji.Catalog{}, fmt.Errorf("loading custom emoji: %w", err)
		}
		if src, err = src.Merge(lib.Emojis()); err != nil {
			return emoji.Catalog{}, err
		}
	}
	return emoji.Build(src, nil, emoji.ParseSkinTone(emojiTone), nil), nil
}
