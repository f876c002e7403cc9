package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/showcase"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// appContext bundles what every command needs once flags are parsed.
type appContext struct {
	settings config.Settings
	log      *logger.Logger
	scope    *components.Scope
	page     *showcase.Showcase
}

func loadApp(cmd *cobra.Command) (*appContext, error) {
	settings, err := config.LoadSettings(config.WithFlags(cmd.Flags()))
	if err != nil {
		return nil, err
	}

	level := settings.LogLevel
	if settings.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	applyColorProfile(settings.Color)

	doc, err := loadDocument(settings.DocumentPath, log)
	if err != nil {
		return nil, err
	}

	mode, err := components.ParseMode(settings.Mode)
	if err != nil {
		return nil, err
	}

	scope, page, err := mountDocument(doc, mode, log)
	if err != nil {
		return nil, err
	}

	return &appContext{settings: settings, log: log, scope: scope, page: page}, nil
}

// mountDocument provides the document's theme and mounts its page.
func mountDocument(doc *config.Document, mode components.Mode, log *logger.Logger) (*components.Scope, *showcase.Showcase, error) {
	buttons, issues := doc.ResolveButtons()
	for _, issue := range issues {
		log.Issue(issue.Field, issue.Err, "falling back to the default treatment")
	}

	logo := components.DefaultLogo()
	if doc.Logo != "" {
		var err error
		logo, err = components.LoadAsset(doc.Logo)
		if err != nil {
			return nil, nil, err
		}
	}

	scope := components.Provide(doc.Theme.ToTheme(), components.WithMode(mode))
	if err := scope.Err(); err != nil {
		return nil, nil, fmt.Errorf("register global styles: %w", err)
	}
	log.WithFields(map[string]any{
		"mode":    mode.String(),
		"rules":   len(scope.Rules()),
		"applied": scope.Applied(),
	}).Debug("theme provided")

	page := showcase.Mount(scope, showcase.Layout{Logo: logo, Buttons: buttons})
	log.WithFields(map[string]any{"buttons": len(buttons), "logo": logo.Name}).Debug("page mounted")
	return scope, page, nil
}

func loadDocument(path string, log *logger.Logger) (*config.Document, error) {
	if strings.TrimSpace(path) == "" {
		log.Debug("using built-in document")
		return config.DefaultDocument(), nil
	}

	doc, err := config.ParseDocument(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]any{"path": path}).Info("document loaded")
	return doc, nil
}

// applyColorProfile forces a lipgloss color profile. "auto" keeps the
// profile lipgloss detected for the output.
func applyColorProfile(name string) {
	switch name {
	case "ascii":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "ansi":
		lipgloss.SetColorProfile(termenv.ANSI)
	case "ansi256":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
