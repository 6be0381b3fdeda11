package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ustaad/config"
	"ustaad/editor"
	"ustaad/history"
	"ustaad/session"
	"ustaad/storage"
	"ustaad/ui"
)

const Version = "v0.1.0"

func main() {
	root := newRootCmd()
	root.AddCommand(newSetKeyCmd())
	root.AddCommand(newClearKeyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "ustaad <file> [start[:end]]",
		Short: "Code Ustaad - code explainer in your terminal",
		Long: "Ustaad explains the selected code in simple Hinglish, streaming the\n" +
			"explanation into a side panel with follow-up questions and history.\n\n" +
			"Pass '-' as the file to read code from stdin. Line numbers are 1-based;\n" +
			"omitting the range selects the whole file.",
		Args:          cobra.RangeArgs(1, 2),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end := 0, -1
			if len(args) == 2 {
				var err error
				start, end, err = parseLineRange(args[1])
				if err != nil {
					return err
				}
			}

			source, err := openSource(args[0], language, start, end)
			if err != nil {
				return err
			}
			return runPanel(source)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "override language detection (e.g. go, python)")
	return cmd
}

func openSource(path, language string, start, end int) (editor.Source, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if language == "" {
			language = "plaintext"
		}
		return editor.NewStdinSource(string(content), language), nil
	}

	src, err := editor.NewFileSource(path, start, end)
	if err != nil {
		return nil, err
	}
	if language != "" {
		src.SetLanguage(language)
	}
	return src, nil
}

// parseLineRange parses "12" or "12:40" (1-based, inclusive) into the
// zero-based selection bounds.
func parseLineRange(s string) (start, end int, err error) {
	first, rest, found := strings.Cut(s, ":")

	start, err = strconv.Atoi(first)
	if err != nil || start < 1 {
		return 0, 0, fmt.Errorf("invalid line range %q", s)
	}

	if !found {
		return start - 1, start - 1, nil
	}
	end, err = strconv.Atoi(rest)
	if err != nil || end < start {
		return 0, 0, fmt.Errorf("invalid line range %q", s)
	}
	return start - 1, end - 1, nil
}

// programRelay forwards sink messages to the program once it exists. The
// session, sink, panel, and program form a cycle; the relay breaks it.
type programRelay struct {
	program **tea.Program
}

func (r *programRelay) Send(msg tea.Msg) {
	if p := *r.program; p != nil {
		p.Send(msg)
	}
}

func runPanel(source editor.Source) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.InitDebugLog(cfg.DataDir())

	kv, err := storage.Open(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer kv.Close()

	hist := history.NewStore(kv, cfg.MaxHistoryItems)

	var program *tea.Program
	relay := &programRelay{program: &program}
	sink := ui.NewProgramSink(relay)

	sess := session.New(cfg, source, hist, sink, session.Hooks{
		Notify: func(message string) {
			relay.Send(ui.NotifyMsg(message, strings.HasPrefix(message, "Ustaad ko problem")))
		},
		ConfirmLarge: func(lineCount int) bool {
			answer := make(chan bool, 1)
			relay.Send(ui.ConfirmLargeMsg(lineCount, answer))
			return <-answer
		},
		OpenURL: ui.OpenURL,
	})

	language := "plaintext"
	if sel, err := source.Selection(); err == nil {
		language = sel.Language
	}

	panel := ui.NewPanel(sess, language)
	program = tea.NewProgram(panel, tea.WithAltScreen())

	go func() {
		err := sess.Explain(context.Background())
		if errors.Is(err, session.ErrNoAPIKey) {
			relay.Send(ui.SetupRequestMsg(cfg.Provider))
			return
		}
		relay.Send(ui.ExplainFinishedMsg(err))
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("panel exited with error: %w", err)
	}
	sink.Dispose()
	sess.Dispose()
	return nil
}

func newSetKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [provider] [key]",
		Short: "Store an API key (provider: openai or gemini)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			providerTag := cfg.Provider
			if len(args) >= 1 {
				providerTag = args[0]
			}
			if providerTag != "openai" && providerTag != "gemini" {
				return fmt.Errorf("unknown provider %q (use openai or gemini)", providerTag)
			}

			var key string
			if len(args) == 2 {
				key = args[1]
			} else {
				fmt.Printf("%s API key: ", providerTag)
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				key = strings.TrimSpace(line)
			}
			if key == "" {
				return errors.New("empty API key")
			}

			cfg.Credentials.Set(providerTag, key)
			if err := cfg.Credentials.Save(cfg.DataDir()); err != nil {
				return err
			}
			fmt.Printf("API key saved for %s.\n", providerTag)
			return nil
		},
	}
}

func newClearKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-key [provider]",
		Short: "Remove a stored API key",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			providerTag := cfg.Provider
			if len(args) == 1 {
				providerTag = args[0]
			}

			cfg.Credentials.Delete(providerTag)
			if err := cfg.Credentials.Save(cfg.DataDir()); err != nil {
				return err
			}
			fmt.Printf("API key cleared for %s.\n", providerTag)
			return nil
		},
	}
}
