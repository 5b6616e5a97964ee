package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jobsync/jobsync/internal/interview"
	"github.com/jobsync/jobsync/internal/observability"
	"github.com/jobsync/jobsync/internal/speech"
	"github.com/jobsync/jobsync/internal/types"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const (
	promptAnswer = "Answer this question"
	promptSkip   = "Skip this question"
	promptBack   = "Go back to the previous question"
	promptFinish = "Finish the interview now"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview practice session",
	Long:  "Run an interactive mock interview. Answers are scored for clarity, structure, and confidence, with recommendations for improvement.",
	RunE:  runInterview,
}

var (
	interviewType  string
	interviewSeed  int64
	showTranscript bool
	useVoice       bool
)

// voiceProvider is the speech-to-text capability for this environment. The
// terminal has no recognizer, so voice input degrades to typed input.
var voiceProvider speech.Provider = speech.Unsupported{}

func init() {
	interviewCmd.Flags().StringVarP(&interviewType, "type", "t", "", "Interview type: behavioral, technical, situational, or mixed")
	interviewCmd.Flags().Int64Var(&interviewSeed, "seed", 0, "Random seed for question selection (0 uses the current time)")
	interviewCmd.Flags().BoolVar(&showTranscript, "transcript", false, "Print the full transcript after the session")
	interviewCmd.Flags().BoolVar(&useVoice, "voice", false, "Answer by voice when a recognizer is available")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	t, err := chooseType(interviewType)
	if err != nil {
		return err
	}

	seed := interviewSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	machine := interview.NewMachine(interview.WithRand(rand.New(rand.NewSource(seed))))

	sess, effects, err := machine.Start(t)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	fmt.Printf("\n%s (%d questions)\n", t.Title(), len(sess.Questions))

	for {
		var result *types.InterviewResult
		for _, effect := range effects {
			switch effect.Kind {
			case interview.EffectShowQuestion:
				fmt.Printf("\nQuestion %d of %d:\n  %s\n", effect.Index+1, effect.Total, effect.Question)
			case interview.EffectRestoreAnswer:
				fmt.Printf("  (previous answer: %s)\n", effect.Text)
			case interview.EffectShowResults:
				result = effect.Result
			}
		}
		if result != nil {
			printer.PrintInterviewResult(result)
			if showTranscript {
				printer.PrintTranscript(result.Answers)
			}
			return nil
		}

		action, err := chooseAction(sess.CurrentQuestionIndex > 0)
		if err != nil {
			return err
		}

		switch action {
		case promptAnswer:
			text, err := readAnswer()
			if err != nil {
				return err
			}
			sess, effects = machine.Advance(sess, text)
		case promptSkip:
			sess, effects = machine.Skip(sess, "")
		case promptBack:
			sess, effects = machine.Retreat(sess, "")
		case promptFinish:
			sess, effects = machine.Complete(sess, "")
		}
	}
}

// chooseType resolves the interview type from the flag or an interactive
// prompt.
func chooseType(flag string) (types.InterviewType, error) {
	if flag != "" {
		t := types.InterviewType(flag)
		if !t.Valid() {
			return "", fmt.Errorf("unknown interview type: %s", flag)
		}
		return t, nil
	}

	prompt := promptui.Select{
		Label: "Interview type",
		Items: []string{
			string(types.InterviewMixed),
			string(types.InterviewBehavioral),
			string(types.InterviewTechnical),
			string(types.InterviewSituational),
		},
	}
	_, choice, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return types.InterviewType(choice), nil
}

func chooseAction(canGoBack bool) (string, error) {
	items := []string{promptAnswer, promptSkip}
	if canGoBack {
		items = append(items, promptBack)
	}
	items = append(items, promptFinish)

	prompt := promptui.Select{
		Label: "What would you like to do?",
		Items: items,
	}
	_, choice, err := prompt.Run()
	return choice, err
}

func readAnswer() (string, error) {
	if useVoice {
		if text, ok := readVoiceAnswer(); ok {
			return text, nil
		}
	}

	prompt := promptui.Prompt{
		Label: "Your answer",
	}
	return prompt.Run()
}

// readVoiceAnswer captures one answer through the speech provider. Any
// recognition error falls back to typed input.
func readVoiceAnswer() (string, bool) {
	var transcript string
	var final bool

	ok := voiceProvider.Start(func(ev speech.Event) {
		if ev.Failed() {
			fmt.Println(ev.Message)
			return
		}
		transcript = ev.Transcript
		final = ev.IsFinal
	})
	voiceProvider.Stop()

	if !ok || !final || transcript == "" {
		return "", false
	}
	return transcript, true
}
