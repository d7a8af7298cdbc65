package session

import "github.com/arthur-debert/edit-move/pkg/ui/confirmations"

// Answers returned by the prompts below.
const (
	AnswerReplace  = "replace"
	AnswerKeep     = "keep"
	AnswerQuit     = "quit"
	AnswerRestart  = "restart"
	AnswerStrip    = "strip"
	AnswerPreserve = "preserve"
	AnswerEdit     = "edit"
	AnswerProceed  = "proceed"
	AnswerUndo     = "undo"
)

var (
	sanitizePrompt = confirmations.Prompt{
		Choices: []confirmations.Choice{
			{Key: AnswerReplace, Label: "Replace non-printable characters"},
			{Key: AnswerKeep, Label: "Keep paths as they are"},
			{Key: AnswerQuit, Label: "Quit"},
		},
		Default: AnswerReplace,
	}

	restartPrompt = confirmations.Prompt{
		Choices: []confirmations.Choice{
			{Key: AnswerRestart, Label: "Restart"},
			{Key: AnswerQuit, Label: "Quit"},
		},
		Default: AnswerRestart,
	}

	whitespacePrompt = confirmations.Prompt{
		Choices: []confirmations.Choice{
			{Key: AnswerStrip, Label: "Strip trailing whitespace"},
			{Key: AnswerPreserve, Label: "Preserve all whitespace"},
			{Key: AnswerEdit, Label: "Edit"},
			{Key: AnswerQuit, Label: "Quit"},
		},
		Default: AnswerStrip,
	}

	collisionPrompt = confirmations.Prompt{
		Choices: []confirmations.Choice{
			{Key: AnswerEdit, Label: "Edit"},
			{Key: AnswerQuit, Label: "Quit"},
		},
		Default: AnswerEdit,
	}

	previewPrompt = confirmations.Prompt{
		Choices: []confirmations.Choice{
			{Key: AnswerProceed, Label: "Proceed"},
			{Key: AnswerEdit, Label: "Edit"},
			{Key: AnswerQuit, Label: "Quit"},
		},
		Default: AnswerProceed,
	}

	failurePrompt = confirmations.Prompt{
		Choices: []confirmations.Choice{
			{Key: AnswerKeep, Label: "Keep successful changes"},
			{Key: AnswerUndo, Label: "Undo all changes"},
		},
		Default: AnswerKeep,
	}
)

// InstructionHeader is placed above the paths in the editor. It ends with the
// blank line that separates it from the listing.
var InstructionHeader = []string{
	"**********************************************************************",
	"* INSTRUCTIONS:",
	"*",
	"* Edit file paths below to move or rename the corresponding files.",
	"*",
	"* Do NOT add or remove any lines.",
	"*",
	"**********************************************************************",
	"",
}
