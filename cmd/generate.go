package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	contentadapter "github.com/marketcrew/mc-cli/internal/adapters/render/content"
	"github.com/marketcrew/mc-cli/internal/application"
	"github.com/marketcrew/mc-cli/internal/domain"
)

func newGenerateCmd(app *app) *cobra.Command {
	var (
		brand    string
		industry string
		audience string
		tone     string
		goals    string
		products string
		artifact string
		asJSON   bool
		emailTo  string
		download bool
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the full marketing content set for a brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}
			if !session.IsLoggedIn() {
				return fmt.Errorf("not signed in; run `mc login`")
			}

			parsedTone, err := domain.ParseTone(tone)
			if err != nil {
				return err
			}

			profile := domain.BrandProfile{
				BrandName: brand,
				Industry:  industry,
				Audience:  audience,
				Tone:      parsedTone,
				Goals:     goals,
				Products:  products,
			}

			var kind domain.ArtifactKind
			if artifact != "" {
				kind, err = domain.ParseArtifactKind(artifact)
				if err != nil {
					return err
				}
			}

			generate := func(ctx context.Context) error {
				_, err := app.orchestrator.Generate(ctx, session, profile)
				return err
			}

			if asJSON {
				if err := generate(cmd.Context()); err != nil {
					return err
				}
			} else {
				if err := runGenerateSpinner(cmd.Context(), cmd.ErrOrStderr(), generate); err != nil {
					return err
				}
			}

			content, ok := app.orchestrator.Content()
			if !ok {
				return domain.ErrNoGeneratedContent
			}

			if err := writeContentOutput(cmd, app, content, profile.BrandName, kind, asJSON); err != nil {
				return err
			}

			if download {
				path := outPath
				if path == "" {
					path = defaultDownloadPath(profile.BrandName)
				}
				if err := downloadToFile(cmd.Context(), app, session, profile.BrandName, path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", path)
			}

			if emailTo != "" {
				err := app.delivery.Email(cmd.Context(), session, application.EmailCommand{
					To:               emailTo,
					ContentAvailable: app.orchestrator.HasContent(),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Content emailed to %s\n", emailTo)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Brand name")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&audience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&tone, "tone", string(domain.ToneFriendly), "Brand tone (friendly, professional, humorous, formal, casual)")
	cmd.Flags().StringVar(&goals, "goals", "", "Marketing goals")
	cmd.Flags().StringVar(&products, "products", "", "Comma-separated products")
	cmd.Flags().StringVar(&artifact, "artifact", "", "Render a single artifact kind (default: all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().StringVar(&emailTo, "email", "", "Email the generated content to this address")
	cmd.Flags().BoolVar(&download, "download", false, "Download the rendered bundle after generating")
	cmd.Flags().StringVar(&outPath, "out", "", "Download target path (default: <brand>-content.txt)")
	_ = cmd.MarkFlagRequired("brand")

	return cmd
}

func writeContentOutput(cmd *cobra.Command, app *app, content domain.ContentSet, brandName string, kind domain.ArtifactKind, asJSON bool) error {
	if asJSON {
		payload := make(map[string]string, len(content.Artifacts))
		for artifactKind, text := range content.Artifacts {
			if kind != "" && artifactKind != kind {
				continue
			}
			payload[string(artifactKind)] = text
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	rendered, err := app.contentRenderer(content, contentadapter.RenderOptions{
		BrandName: brandName,
		Kind:      kind,
	})
	if err != nil {
		return fmt.Errorf("render content: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func downloadToFile(ctx context.Context, app *app, session domain.Session, brandName, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create download file: %w", err)
	}

	if err := app.delivery.Download(ctx, session, brandName, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}
