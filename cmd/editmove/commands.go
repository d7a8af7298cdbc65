package editmove

import (
	"embed"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/edit-move/internal/version"
	"github.com/arthur-debert/edit-move/pkg/cobrax/topics"
	"github.com/arthur-debert/edit-move/pkg/config"
	"github.com/arthur-debert/edit-move/pkg/editor"
	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/filesystem"
	"github.com/arthur-debert/edit-move/pkg/logging"
	"github.com/arthur-debert/edit-move/pkg/session"
	"github.com/arthur-debert/edit-move/pkg/style"
	"github.com/arthur-debert/edit-move/pkg/ui"
	"github.com/arthur-debert/edit-move/pkg/ui/confirmations"
)

//go:embed topics/*.md
var helpTopics embed.FS

// rootFlags holds the values of the persistent flags.
type rootFlags struct {
	verbosity  int
	editor     string
	absolute   bool
	preview    bool
	noPreview  bool
	sanitize   bool
	configFile string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "edit-move [flags] FILE...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New(errors.ErrInvalidInput, MsgNoFiles)
			}
			return runEditMove(cmd, flags, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&flags.editor, "editor", "e", "", MsgFlagEditor)
	pf.BoolVar(&flags.absolute, "absolute", false, MsgFlagAbsolute)
	pf.BoolVar(&flags.preview, "preview", false, MsgFlagPreview)
	pf.BoolVar(&flags.noPreview, "no-preview", false, MsgFlagNoPreview)
	pf.BoolVar(&flags.sanitize, "sanitize", false, MsgFlagSanitize)
	pf.StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&flags.format, "format", "", MsgFlagFormat)
	rootCmd.MarkFlagsMutuallyExclusive("preview", "no-preview")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "COMMANDS:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic help renders markdown, so it follows the colour decision of stdout.
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(style.ColorEnabled(os.Stdout)),
	}
	if _, err := topics.Initialize(rootCmd, helpTopics, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig layers the config file, environment and the flags the user set.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	set := make(map[string]interface{})
	changed := cmd.Flags().Changed

	if changed("editor") {
		set["editor"] = flags.editor
	}
	if changed("absolute") {
		set["absolute"] = flags.absolute
	}
	if changed("sanitize") {
		set["sanitize"] = flags.sanitize
	}
	if changed("format") {
		set["format"] = flags.format
	}
	if changed("preview") {
		set["preview"] = flags.preview
	}
	if changed("no-preview") {
		set["preview"] = !flags.noPreview
	}

	return config.Load(config.LoadOptions{
		ConfigFile: flags.configFile,
		Flags:      set,
	})
}

// runEditMove runs one edit session over the given sources.
func runEditMove(cmd *cobra.Command, flags *rootFlags, sources []string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	applyColor(format)

	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
	}

	editorCmd, err := editor.Resolve(cfg.Editor, os.Getenv, editor.FileExists)
	if err != nil {
		return err
	}
	log.Debug().Str("editor", editorCmd.String()).Msg("Resolved editor")

	dialog := confirmations.NewDialog(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	sess := session.New(filesystem.NewOS(), editor.NewExternal(editorCmd), dialog, renderer, session.Options{
		Preview:       cfg.Preview,
		Absolute:      cfg.Absolute,
		Sanitize:      cfg.Sanitize,
		Instructions:  cfg.Instructions,
		ScratchPrefix: cfg.ScratchPrefix,
	})

	result, err := sess.Run(cmd.Context(), sources)
	if err != nil {
		return err
	}
	log.Info().
		Int("completed", len(result.Completed)).
		Int("failed", len(result.Failures)).
		Msg("Edit session finished")
	return nil
}

// applyColor switches lipgloss styles to match the chosen format.
func applyColor(format ui.Format) {
	switch format {
	case ui.FormatTerminal:
		style.SetColor(true)
	case ui.FormatText:
		style.SetColor(false)
	default:
		style.SetColor(style.ColorEnabled(os.Stdout))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "EDIT-MOVE",
				Section: "1",
				Source:  "edit-move " + version.Version,
				Manual:  "edit-move manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
