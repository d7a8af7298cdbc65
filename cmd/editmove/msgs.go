package editmove

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rename and move files by editing their paths"
	MsgVersionShort    = "Print version information"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagEditor    = "Editor command to use (overrides VISUAL and EDITOR)"
	MsgFlagAbsolute  = "Edit absolute paths"
	MsgFlagPreview   = "Show the planned moves and ask before applying them"
	MsgFlagNoPreview = "Apply the moves without showing them first"
	MsgFlagSanitize  = "Replace non-printable characters in paths without asking"
	MsgFlagConfig    = "Read configuration from this file"
	MsgFlagFormat    = "Output format: auto, term or text"
	MsgFlagDefaults  = "Print the built-in defaults instead"

	// Status messages
	MsgNoFiles       = "no files given"
	MsgVersionFormat = "edit-move %s (commit %s, built %s)\n"
)

// Long messages (multi-line)
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
