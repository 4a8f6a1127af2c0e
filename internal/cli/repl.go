// Package cli implements the interactive prompt: free-text conversion
// questions answered inline, plus a few slash commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/wattwise/wattwise/internal/config"
	"github.com/wattwise/wattwise/internal/convert"
	"github.com/wattwise/wattwise/internal/query"
)

const (
	Version = "1.0.0"

	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// commandSuggestions feed slash-command tab completion.
var commandSuggestions = []prompt.Suggest{
	{Text: "/help", Description: "Show help"},
	{Text: "/examples", Description: "Show example questions"},
	{Text: "/config", Description: "Show current configuration"},
	{Text: "/exit", Description: "Exit program"},
}

// REPL holds the interpreter shared by all prompt executions.
type REPL struct {
	cfg    *config.Config
	interp *query.Interpreter
}

// Run starts the interactive prompt and blocks until the user exits.
func Run(cfg *config.Config) error {
	printWelcome()

	r := &REPL{
		cfg:    cfg,
		interp: query.New(query.WithCueWindow(cfg.Parser.CueWindow)),
	}

	p := prompt.New(
		r.execute,
		completer,
		prompt.OptionTitle("wattwise"),
		prompt.OptionPrefix("watt> "),
		prompt.OptionPrefixTextColor(prompt.Green),
		prompt.OptionSetExitCheckerOnInput(exitChecker),
	)
	p.Run()
	return nil
}

// printWelcome prints welcome message
func printWelcome() {
	fmt.Printf("\n%sWattWise v%s%s - Microwave Cooking Time Converter\n", colorCyan, Version, colorReset)
	fmt.Printf("%sAsk in plain English, e.g. \"recipe says 950w for 5 minutes, my microwave is 700w\"%s\n", colorGray, colorReset)
	fmt.Printf("%sType /help for help, /exit to quit%s\n\n", colorGray, colorReset)
}

// exitChecker stops the prompt loop after an exit command was executed.
func exitChecker(in string, breakline bool) bool {
	if !breakline {
		return false
	}
	switch strings.TrimSpace(in) {
	case "/exit", "/quit", "/q":
		return true
	}
	return false
}

// completer offers slash commands; free text gets no suggestions.
func completer(d prompt.Document) []prompt.Suggest {
	return suggestFor(d.TextBeforeCursor())
}

func suggestFor(text string) []prompt.Suggest {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return nil
	}
	return prompt.FilterHasPrefix(commandSuggestions, trimmed, true)
}

// execute handles one submitted line.
func (r *REPL) execute(line string) {
	input := strings.TrimSpace(line)
	if input == "" {
		return
	}

	if strings.HasPrefix(input, "/") {
		r.handleCommand(input)
		return
	}

	r.answer(input)
}

// answer interprets a free-text question and prints the conversion.
func (r *REPL) answer(input string) {
	parsed, err := r.interp.Interpret(input)
	if err != nil {
		fmt.Printf("\n%s❌ %v%s\n\n", colorRed, err, colorReset)
		return
	}

	result, err := convert.Convert(parsed.OriginalWattage, parsed.TargetWattage, parsed.Minutes, parsed.Seconds)
	if err != nil {
		fmt.Printf("\n%s❌ %v%s\n\n", colorRed, err, colorReset)
		return
	}

	fmt.Printf("\n%s\n\n", renderResult(result))
}

// renderResult formats a conversion for terminal display.
func renderResult(result *convert.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s⏱  %s%s\n", colorGreen, result.ConvertedTime.Formatted, colorReset)
	fmt.Fprintf(&b, "%s%s%s\n", colorCyan, result.Explanation, colorReset)
	fmt.Fprintf(&b, "%sWattage ratio: %.2f | Power level: %s - %s%s",
		colorGray, result.Wattages.Ratio,
		result.PowerRecommendation.PowerLevel, result.PowerRecommendation.Reason,
		colorReset)
	return b.String()
}

// handleCommand handles built-in slash commands.
func (r *REPL) handleCommand(cmd string) {
	switch strings.ToLower(strings.Fields(cmd)[0]) {
	case "/help":
		printHelp()

	case "/examples":
		printExamples()

	case "/config":
		fmt.Println(r.cfg.String())

	case "/exit", "/quit", "/q":
		fmt.Printf("%sGoodbye! 👋%s\n", colorCyan, colorReset)

	default:
		fmt.Printf("%s❓ Unknown command: %s%s\n", colorYellow, cmd, colorReset)
		fmt.Println("Type /help for available commands")
	}
}

// printHelp prints help information
func printHelp() {
	fmt.Printf(`
%sWattWise Help%s

%sBuilt-in Commands:%s
  /help      - Show this help message
  /examples  - Show example questions
  /config    - Show current configuration
  /exit      - Exit program

%sHow to ask:%s
  Mention both wattages and the cooking time in one sentence.
  Phrases like "recipe expects 950w" or "my 700w microwave" make the
  roles explicit; otherwise the first wattage is taken as the recipe's.

%sValid ranges:%s
  Wattages %d-%d watts, minutes 0-%d, seconds 0-%d.

`, colorCyan, colorReset, colorYellow, colorReset, colorYellow, colorReset,
		colorYellow, colorReset,
		convert.MinWattage, convert.MaxWattage, convert.MaxMinutes, convert.MaxSeconds)
}

// printExamples prints example questions
func printExamples() {
	fmt.Printf(`
%sExamples:%s
  "my 700w microwave, recipe expects 950w, cook 5 minutes"
  "recipe says 1000w for 2 minutes 30 seconds, i have a 800w microwave"
  "convert 950w to 700w for 90 seconds"

`, colorYellow, colorReset)
}
