package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/creator-assistant/internal/reveal"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
	"github.com/vfg2006/creator-assistant/pkg/utils"
)

type askOptions struct {
	noAnimate bool
	asJSON    bool
}

func newAskCmd(a *app) *cobra.Command {
	opts := askOptions{}

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Answer a single question and exit",
		Example: `  assistant ask "What are my earnings?"
  assistant ask --json "How are my top products performing?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			revealOpts := reveal.Options{
				CharDelay:     a.cfg.Reveal.CharDelay(),
				LineDelay:     a.cfg.Reveal.LineDelay(),
				LongThreshold: a.cfg.Reveal.LongThreshold,
			}
			return runAsk(cmd.Context(), cmd.OutOrStdout(), a.assistant, question, revealOpts, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noAnimate, "no-animate", false, "print the answer at once")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print {intent, response} as JSON")

	return cmd
}

func runAsk(ctx context.Context, out io.Writer, assistant assisting.Assistant, question string, revealOpts reveal.Options, opts askOptions) error {
	if strings.TrimSpace(question) == "" {
		return errors.New("a pergunta não pode ser vazia")
	}

	reply := assistant.Answer(question)

	if opts.asJSON {
		body, err := utils.PrettyJson(reply)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, body)
		return err
	}

	if opts.noAnimate {
		_, err := fmt.Fprintf(out, "%s\n\n%s\n", reply.Text, reveal.Disclaimer)
		return err
	}

	// cada frame traz o prefixo revelado até agora; imprime só o trecho novo
	printed := 0
	frames := reveal.NewController(revealOpts).Start(ctx, reveal.Request{Text: reply.Text})
	for frame := range frames {
		if _, err := io.WriteString(out, frame.Text[printed:]); err != nil {
			return err
		}
		printed = len(frame.Text)

		if frame.Done {
			_, err := fmt.Fprintf(out, "\n\n%s\n", frame.Disclaimer)
			return err
		}
	}

	return ctx.Err()
}
