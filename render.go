package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/CiaranMcAleer/postcard/internal/config"
	"github.com/CiaranMcAleer/postcard/internal/log"
	"github.com/CiaranMcAleer/postcard/internal/postcard"
	"github.com/CiaranMcAleer/postcard/internal/sitegen"
	"github.com/spf13/cobra"
)

func newRenderCmd(cfgFile *string) *cobra.Command {
	var (
		contentDir string
		path       string
		out        string
		tpl        string
	)

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Renders the post cards of one or more content files",
		Long: `The render command reads the frontmatter of each Markdown content file,
resolves it into a post card and writes the card markup to stdout. With --out,
the cards are wrapped in a preview page that includes the theme stylesheet.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if path != "" && len(args) > 1 {
				return errors.New("--path can only be used with a single file")
			}

			conf, err := config.Parse(*cfgFile)
			if err != nil {
				return err
			}
			if tpl != "" {
				conf.Template = tpl
			}

			startTime := time.Now()
			logger := log.Named("render")
			proc := sitegen.NewMarkdownProcessor()

			posts := make([]postcard.PostProps, 0, len(args))
			for _, file := range args {
				inputDir, relPath := splitContentPath(contentDir, file)
				props, err := proc.ProcessMarkdownFile(inputDir, relPath)
				if err != nil {
					return err
				}
				if path != "" {
					props.Path = path
				}
				logger.Infof("%s -> %s", file, props.Path)
				posts = append(posts, props)
			}

			var buf bytes.Buffer
			if len(posts) == 1 {
				err = postcard.Render(&buf, posts[0])
			} else {
				err = postcard.RenderList(&buf, posts)
			}
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			title := "Posts"
			if len(posts) == 1 {
				title = posts[0].Info.Frontmatter.Title
			}
			page, err := sitegen.RenderHTMLPage(sitegen.PageData{
				Title:      title,
				Stylesheet: template.CSS(conf.CardTheme().Stylesheet()),
				Content:    template.HTML(buf.String()),
			}, conf.Template)
			if err != nil {
				return err
			}
			if err := sitegen.WritePage(out, page); err != nil {
				return err
			}

			msg, over, err := sitegen.CheckGzipSize(out, conf.SizeThreshold)
			if err != nil {
				return fmt.Errorf("failed to check size of '%s': %w", out, err)
			}
			if over {
				logger.Warn(msg)
			} else {
				logger.Info(msg)
			}

			logger.Infof("Wrote %d card(s) to %s in %v", len(posts), out, time.Since(startTime))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentDir, "content", "c", ".", "content directory the internal paths are relative to")
	cmd.Flags().StringVarP(&path, "path", "p", "", "internal path of the post (single file only)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write a preview page to this file instead of printing the cards")
	cmd.Flags().StringVarP(&tpl, "template", "t", "", "preview page template name or path (overrides config)")

	return cmd
}

// splitContentPath splits file into the content directory and the path
// relative to it. Files outside contentDir are taken relative to their own
// directory.
func splitContentPath(contentDir, file string) (string, string) {
	rel, err := filepath.Rel(contentDir, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Dir(file), filepath.Base(file)
	}
	return contentDir, rel
}
